package service

import (
	"regexp"
	"strings"
	"time"

	"tutorhub_backend/internal/model"
	"tutorhub_backend/internal/repository"
	"tutorhub_backend/internal/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 标题转 URL slug
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// BlogService 平台博客 管理员撰写 支持定时发布
type BlogService struct {
	BlogRepo *repository.BlogRepository
	logger   *zap.Logger
}

func NewBlogService(blogRepo *repository.BlogRepository, logger *zap.Logger) *BlogService {
	return &BlogService{BlogRepo: blogRepo, logger: logger}
}

type CreatePostRequest struct {
	Title      string     `json:"title" binding:"required"`
	Slug       string     `json:"slug"`
	Summary    string     `json:"summary"`
	Content    string     `json:"content" binding:"required"`
	CoverImage string     `json:"coverImage"`
	Published  bool       `json:"published"`
	PublishAt  *time.Time `json:"publishAt"`
}

func (s *BlogService) CreatePost(authorID uint, req CreatePostRequest) (*model.BlogPost, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}

	if _, err := s.BlogRepo.FindBySlug(slug); err == nil {
		return nil, util.ErrSlugTaken
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	post := &model.BlogPost{
		AuthorID:   authorID,
		Title:      req.Title,
		Slug:       slug,
		Summary:    req.Summary,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Published:  req.Published,
		PublishAt:  req.PublishAt,
	}
	if post.Published {
		now := time.Now()
		post.PublishedAt = &now
		post.PublishAt = nil
	}

	if err := s.BlogRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

type UpdatePostRequest struct {
	Title      string     `json:"title"`
	Summary    string     `json:"summary"`
	Content    string     `json:"content"`
	CoverImage string     `json:"coverImage"`
	Published  *bool      `json:"published"`
	PublishAt  *time.Time `json:"publishAt"`
}

func (s *BlogService) UpdatePost(postID uint, req UpdatePostRequest) (*model.BlogPost, error) {
	post, err := s.BlogRepo.FindByID(postID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Summary != "" {
		post.Summary = req.Summary
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.CoverImage != "" {
		post.CoverImage = req.CoverImage
	}
	if req.PublishAt != nil {
		post.PublishAt = req.PublishAt
	}
	if req.Published != nil {
		post.Published = *req.Published
		if post.Published && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
			post.PublishAt = nil
		}
	}

	if err := s.BlogRepo.Save(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) GetPublishedBySlug(slug string) (*model.BlogPost, error) {
	post, err := s.BlogRepo.FindBySlug(slug)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, util.ErrPostNotFound
	}
	return post, nil
}

func (s *BlogService) ListPublished(page, limit int) ([]model.BlogPost, int64, error) {
	return s.BlogRepo.ListPublished(page, limit)
}

func (s *BlogService) ListAll(page, limit int) ([]model.BlogPost, int64, error) {
	return s.BlogRepo.ListAll(page, limit)
}

func (s *BlogService) DeletePost(postID uint) error {
	if _, err := s.BlogRepo.FindByID(postID); err == gorm.ErrRecordNotFound {
		return util.ErrPostNotFound
	} else if err != nil {
		return err
	}
	return s.BlogRepo.Delete(postID)
}

// PublishScheduled 把到期的定时文章标记为已发布 由后台定时器周期调用
func (s *BlogService) PublishScheduled(now time.Time) {
	posts, err := s.BlogRepo.FindDuePublishes(now)
	if err != nil {
		s.logger.Error("查询待发布文章失败", zap.Error(err))
		return
	}

	for i := range posts {
		post := &posts[i]
		post.Published = true
		post.PublishedAt = post.PublishAt
		post.PublishAt = nil
		if err := s.BlogRepo.Save(post); err != nil {
			s.logger.Error("定时发布失败", zap.Uint("postId", post.ID), zap.Error(err))
			continue
		}
		s.logger.Info("定时发布文章", zap.Uint("postId", post.ID), zap.String("slug", post.Slug))
	}
}
