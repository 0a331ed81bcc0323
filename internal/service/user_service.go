package service

import (
	"TrendRadar/internal/api/dto"
	"TrendRadar/internal/model"
	"TrendRadar/internal/repository"
	"context"
	"strings"

	"github.com/jinzhu/copier"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]*dto.UserDTO, error)
	CreateUser(ctx context.Context, createDTO *dto.UserCreateDTO) (*dto.UserDTO, error)
	GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, updateDTO *dto.UserUpdateDTO) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.UserDTO, 0, len(users))
	if err = copier.Copy(&result, &users); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, createDTO *dto.UserCreateDTO) (*dto.UserDTO, error) {
	username := strings.TrimSpace(createDTO.Username)
	email := strings.TrimSpace(createDTO.Email)
	if username == "" {
		return nil, ErrParamInvalid
	}

	exists, err := s.userRepo.ExistsUsernameOrEmail(ctx, username, email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExist
	}

	user := &model.User{
		Username: username,
		Email:    email,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return toUserDTO(user)
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user)
}

// UpdateUser 只修改传入的字段, 改后的用户名或邮箱不能与他人重复
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id uint64, updateDTO *dto.UserUpdateDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if updateDTO.Username != nil {
		username := strings.TrimSpace(*updateDTO.Username)
		if username == "" {
			return nil, ErrParamInvalid
		}
		user.Username = username
	}
	if updateDTO.Email != nil {
		user.Email = strings.TrimSpace(*updateDTO.Email)
	}

	exists, err := s.userRepo.ExistsUsernameOrEmail(ctx, user.Username, user.Email, user.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExist
	}

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return toUserDTO(user)
}

func toUserDTO(user *model.User) (*dto.UserDTO, error) {
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return userDTO, nil
}
