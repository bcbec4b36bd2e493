package service

import (
	"context"
	"math"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"tutorhub_backend/internal/model"
	"tutorhub_backend/internal/repository"
	"tutorhub_backend/internal/util"

	"gorm.io/gorm"
)

// TutorService 导师主页：资料维护、学科检索、介绍视频上传
type TutorService struct {
	TutorRepo      *repository.TutorRepository
	StorageService *StorageService
}

func NewTutorService(tutorRepo *repository.TutorRepository, storageService *StorageService) *TutorService {
	return &TutorService{
		TutorRepo:      tutorRepo,
		StorageService: storageService,
	}
}

type UpsertTutorProfileRequest struct {
	Headline     string   `json:"headline" binding:"required"`
	Bio          string   `json:"bio"`
	Subjects     []string `json:"subjects" binding:"required,min=1"`
	HourlyRate   int      `json:"hourlyRate" binding:"min=0"`
	Availability []string `json:"availability"`
}

// UpsertProfile 新建或更新导师资料 资料变更后需要管理员重新审核
func (s *TutorService) UpsertProfile(userID uint, req UpsertTutorProfileRequest) (*model.TutorProfile, error) {
	profile := &model.TutorProfile{
		UserID:       userID,
		Headline:     req.Headline,
		Bio:          req.Bio,
		Subjects:     model.StringList(req.Subjects),
		HourlyRate:   req.HourlyRate,
		Availability: model.StringList(req.Availability),
		Verified:     false,
	}

	if existing, err := s.TutorRepo.FindByUserID(userID); err == nil {
		profile.IntroVideoURL = existing.IntroVideoURL
		profile.IntroVideoDuration = existing.IntroVideoDuration
	}

	if err := s.TutorRepo.Upsert(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *TutorService) GetProfile(userID uint) (*model.TutorProfile, error) {
	profile, err := s.TutorRepo.FindByUserID(userID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrTutorNotFound
	}
	return profile, err
}

func (s *TutorService) Search(subject string, page, limit int) ([]model.TutorProfile, int64, error) {
	return s.TutorRepo.Search(subject, page, limit)
}

// UploadIntroVideo 上传介绍视频 先落到临时文件用 ffprobe 读时长，再交给存储后端
func (s *TutorService) UploadIntroVideo(ctx context.Context, userID uint, header *multipart.FileHeader) (*model.TutorProfile, error) {
	if !util.ExtensionAllowed(header.Filename, util.AllowedVideoExtensions) {
		return nil, util.ErrUnsupportedFile
	}

	profile, err := s.TutorRepo.FindByUserID(userID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrTutorNotFound
	}
	if err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "intro-*"+filepath.Ext(header.Filename))
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.ReadFrom(src); err != nil {
		return nil, err
	}

	info, err := util.GetVideoInfo(tmp.Name())
	if err != nil {
		return nil, err
	}

	objectName := "intro-videos/" + model.GenerateUUID() + filepath.Ext(header.Filename)
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, util.MimeVideo) {
		contentType = "video/mp4"
	}

	url, err := s.StorageService.UploadFile(ctx, objectName, tmp.Name(), contentType)
	if err != nil {
		return nil, err
	}

	profile.IntroVideoURL = url
	profile.IntroVideoDuration = int(math.Round(info.Duration))
	if err := s.TutorRepo.Upsert(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetVerified 管理员审核导师资料
func (s *TutorService) SetVerified(userID uint, verified bool) error {
	if _, err := s.TutorRepo.FindByUserID(userID); err == gorm.ErrRecordNotFound {
		return util.ErrTutorNotFound
	} else if err != nil {
		return err
	}
	return s.TutorRepo.SetVerified(userID, verified)
}
