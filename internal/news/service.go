package news

import (
	"sort"
	"time"

	"github.com/caatpension/pension-api/internal/domain"
	"github.com/caatpension/pension-api/internal/models"
)

// Service serves the seeded news collection. Articles are immutable after
// construction, so no locking is needed.
type Service struct {
	articles []models.NewsArticle
}

func NewService() *Service {
	return &Service{articles: seedArticles()}
}

func seedArticles() []models.NewsArticle {
	return []models.NewsArticle{
		{
			ID:              1,
			Title:           "CAAT Pension Plan Achieves Strong Performance in 2024",
			Content:         "The CAAT Pension Plan is pleased to announce strong investment performance for 2024, with a net return of 8.2%. This performance continues our track record of delivering solid returns for our members while maintaining a focus on long-term sustainability.",
			Summary:         "CAAT Pension Plan reports 8.2% net return for 2024",
			Category:        "performance",
			Featured:        true,
			Published:       true,
			Slug:            "caat-pension-strong-performance-2024",
			Author:          "CAAT Communications Team",
			PublishedAt:     time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			ImageURL:        "/images/news/performance-2024.jpg",
			ReadTimeMinutes: 3,
		},
		{
			ID:              2,
			Title:           "New Online Member Portal Features Now Available",
			Content:         "We're excited to announce several new features in our online member portal, including enhanced pension projections, downloadable statements, and improved mobile experience. These updates make it easier than ever to track your pension benefits.",
			Summary:         "Enhanced online portal with new member features launched",
			Category:        "technology",
			Featured:        true,
			Published:       true,
			Slug:            "new-online-member-portal-features",
			Author:          "Technology Team",
			PublishedAt:     time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
			ImageURL:        "/images/news/portal-update.jpg",
			ReadTimeMinutes: 2,
		},
		{
			ID:              3,
			Title:           "CAAT Pension Plan Welcomes New Participating Employers",
			Content:         "We're pleased to welcome five new employers to the CAAT Pension Plan family. This expansion strengthens our plan and provides pension security to more Canadian workers in the education sector.",
			Summary:         "Five new employers join CAAT Pension Plan",
			Category:        "employers",
			Featured:        false,
			Published:       true,
			Slug:            "new-participating-employers-2024",
			Author:          "Business Development",
			PublishedAt:     time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC),
			ImageURL:        "/images/news/new-employers.jpg",
			ReadTimeMinutes: 2,
		},
		{
			ID:              4,
			Title:           "2024 Annual Members' Meeting Highlights",
			Content:         "The 2024 Annual Members' Meeting was held virtually on October 15, featuring presentations on plan performance, governance updates, and a Q&A session with the Board of Trustees. Meeting materials and recordings are now available.",
			Summary:         "Annual Members' Meeting materials and recordings available",
			Category:        "governance",
			Featured:        false,
			Published:       true,
			Slug:            "annual-members-meeting-2024-highlights",
			Author:          "Governance Team",
			PublishedAt:     time.Date(2024, 10, 16, 0, 0, 0, 0, time.UTC),
			ImageURL:        "/images/news/annual-meeting.jpg",
			ReadTimeMinutes: 4,
		},
	}
}

// sortedByDateDesc returns a copy sorted by published_at, newest first.
// The sort is stable: ties keep insertion order.
func sortedByDateDesc(in []models.NewsArticle) []models.NewsArticle {
	out := make([]models.NewsArticle, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out
}

// List returns articles filtered by category (exact match, empty = no
// filter), sorted newest first, then sliced by skip/limit. Slicing past the
// end yields an empty list.
func (s *Service) List(skip, limit int, category string) []models.NewsArticle {
	filtered := s.articles
	if category != "" {
		filtered = make([]models.NewsArticle, 0, len(s.articles))
		for _, a := range s.articles {
			if a.Category == category {
				filtered = append(filtered, a)
			}
		}
	}

	sorted := sortedByDateDesc(filtered)

	if skip >= len(sorted) {
		return []models.NewsArticle{}
	}
	end := skip + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[skip:end]
}

// ByID returns a single article.
func (s *Service) ByID(id int) (models.NewsArticle, error) {
	for _, a := range s.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return models.NewsArticle{}, domain.ErrNotFound
}

// Featured returns up to limit featured articles, newest first.
func (s *Service) Featured(limit int) []models.NewsArticle {
	featured := make([]models.NewsArticle, 0, len(s.articles))
	for _, a := range s.articles {
		if a.Featured {
			featured = append(featured, a)
		}
	}
	sorted := sortedByDateDesc(featured)
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// Categories returns the distinct category values in ascending lexical order.
func (s *Service) Categories() []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, a := range s.articles {
		if _, ok := seen[a.Category]; ok {
			continue
		}
		seen[a.Category] = struct{}{}
		out = append(out, a.Category)
	}
	sort.Strings(out)
	return out
}
