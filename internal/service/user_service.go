package service

import (
	"context"
	"mime/multipart"
	"strings"

	"tutorhub_backend/internal/model"
	"tutorhub_backend/internal/repository"
	"tutorhub_backend/internal/util"

	"gorm.io/gorm"
)

// UserService 用户资料和管理员运营操作
// 注册登录由外部身份服务负责，这里只处理业务侧的资料
type UserService struct {
	UserRepo       *repository.UserRepository
	StorageService *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storageService *StorageService) *UserService {
	return &UserService{
		UserRepo:       userRepo,
		StorageService: storageService,
	}
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *UserService) ListUsers(role model.UserRole, page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.List(role, page, limit)
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}

func (s *UserService) UpdateProfile(userID uint, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Language != "" {
		user.Language = req.Language
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadAvatar 上传头像并更新资料 只收图片
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, header *multipart.FileHeader) (*model.User, error) {
	if !util.ExtensionAllowed(header.Filename, util.AllowedImageExtensions) {
		return nil, util.ErrUnsupportedFile
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, util.MimeImage) {
		return nil, util.ErrUnsupportedFile
	}

	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	url, err := s.StorageService.UploadMultipart(ctx, "avatars", header)
	if err != nil {
		return nil, err
	}

	user.Avatar = url
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetDisabled 管理员封禁/解封账号 被封账号的令牌在中间件层拦截
func (s *UserService) SetDisabled(userID uint, disabled bool) error {
	if _, err := s.GetUser(userID); err != nil {
		return err
	}
	return s.UserRepo.SetDisabled(userID, disabled)
}
