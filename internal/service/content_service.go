package service

import (
	"TrendRadar/internal/api/dto"
	"TrendRadar/internal/model"
	"TrendRadar/internal/pkg/storage"
	"TrendRadar/internal/pkg/util"
	"TrendRadar/internal/repository"
	"context"
	"io"
	log "log/slog"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
)

type ContentService interface {
	ListContents(ctx context.Context, query *dto.ContentListQuery) ([]*dto.ContentDTO, error)
	CreateContent(ctx context.Context, createDTO *dto.ContentCreateDTO) (*dto.ContentDTO, error)
	CreateSlimContent(ctx context.Context, slimDTO *dto.ContentSlimCreateDTO) (*dto.ContentDTO, error)
	UploadContent(ctx context.Context, form *dto.ContentUploadForm, file *dto.UploadFile, r io.Reader) (*dto.ContentUploadDTO, error)
	GetContent(ctx context.Context, id uint64) (*dto.ContentDTO, error)
	UpdateContent(ctx context.Context, id uint64, updateDTO *dto.ContentUpdateDTO) (*dto.ContentDTO, error)
	DeleteContent(ctx context.Context, id uint64) error
}

type ContentServiceImpl struct {
	contentRepo repository.ContentRepo
	userRepo    repository.UserRepo
	store       storage.FileStore
}

func NewContentService(contentRepo repository.ContentRepo, userRepo repository.UserRepo, store storage.FileStore) ContentService {
	return &ContentServiceImpl{
		contentRepo: contentRepo,
		userRepo:    userRepo,
		store:       store,
	}
}

func (s *ContentServiceImpl) ListContents(ctx context.Context, query *dto.ContentListQuery) ([]*dto.ContentDTO, error) {
	// status 缺省只看已审核内容, 显式传空串表示不过滤
	status := string(model.ContentStatusApproved)
	if query.Status != nil {
		status = *query.Status
	}

	contents, err := s.contentRepo.ListContents(ctx, repository.ContentFilter{
		ContentType: query.Type,
		Industry:    query.Industry,
		Status:      status,
		Search:      query.Search,
	})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ContentDTO, 0, len(contents))
	for _, content := range contents {
		contentDTO, err := toContentDTO(content)
		if err != nil {
			return nil, err
		}
		result = append(result, contentDTO)
	}
	return result, nil
}

func (s *ContentServiceImpl) CreateContent(ctx context.Context, createDTO *dto.ContentCreateDTO) (*dto.ContentDTO, error) {
	contentType := model.ContentType(createDTO.ContentType)
	if !contentType.Valid() {
		return nil, ErrInvalidContentType
	}
	status := model.ContentStatusDraft
	if createDTO.Status != "" {
		status = model.ContentStatus(createDTO.Status)
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if err := s.ensureUser(ctx, createDTO.CreatedBy); err != nil {
		return nil, err
	}

	content := &model.Content{}
	if err := copier.Copy(content, createDTO); err != nil {
		return nil, err
	}
	content.ContentType = contentType
	content.Status = status

	if err := s.contentRepo.CreateContent(ctx, content); err != nil {
		return nil, err
	}
	return toContentDTO(content)
}

func (s *ContentServiceImpl) CreateSlimContent(ctx context.Context, slimDTO *dto.ContentSlimCreateDTO) (*dto.ContentDTO, error) {
	slimDTO.Type = normalizeEnum(slimDTO.Type, "")
	slimDTO.Status = normalizeEnum(slimDTO.Status, string(model.ContentStatusDraft))
	if err := util.ValidateDTO(slimDTO); err != nil {
		return nil, err
	}
	if err := s.ensureUser(ctx, slimDTO.CreatedBy); err != nil {
		return nil, err
	}

	content := &model.Content{
		Title:            slimDTO.Title,
		ShortDescription: slimDTO.Summary,
		ContentType:      model.ContentType(slimDTO.Type),
		ImageURL:         slimDTO.Image,
		CreatedBy:        slimDTO.CreatedBy,
		Status:           model.ContentStatus(slimDTO.Status),
	}
	if err := s.contentRepo.CreateContent(ctx, content); err != nil {
		return nil, err
	}
	return toContentDTO(content)
}

// UploadContent 先保存文件再建内容, image_url 记录存储位置
func (s *ContentServiceImpl) UploadContent(ctx context.Context, form *dto.ContentUploadForm, file *dto.UploadFile, r io.Reader) (*dto.ContentUploadDTO, error) {
	contentType := model.ContentType(normalizeEnum(form.Type, ""))
	if !contentType.Valid() {
		return nil, ErrInvalidContentType
	}
	status := model.ContentStatus(normalizeEnum(form.Status, string(model.ContentStatusDraft)))
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var createdBy *uint64
	if form.CreatedBy != nil {
		id, err := strconv.ParseUint(strings.TrimSpace(*form.CreatedBy), 10, 64)
		if err != nil {
			return nil, ErrCreatedByInvalid
		}
		if err = s.ensureUser(ctx, &id); err != nil {
			return nil, err
		}
		createdBy = &id
	}

	filename := util.SecureFilename(file.Filename)
	if filename == "" {
		return nil, ErrEmptyFilename
	}

	location, err := s.store.Save(ctx, filename, r, file.Size, file.ContentType)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "upload stored", "filename", filename, "location", location, "size", file.Size)

	title := strings.TrimSpace(form.Title)
	if title == "" {
		title = filename
	}

	content := &model.Content{
		Title:       title,
		ContentType: contentType,
		ImageURL:    &location,
		CreatedBy:   createdBy,
		Status:      status,
	}
	if err = s.contentRepo.CreateContent(ctx, content); err != nil {
		return nil, err
	}

	contentDTO, err := toContentDTO(content)
	if err != nil {
		return nil, err
	}
	return &dto.ContentUploadDTO{
		OK:       true,
		Filename: filename,
		Content:  contentDTO,
	}, nil
}

func (s *ContentServiceImpl) GetContent(ctx context.Context, id uint64) (*dto.ContentDTO, error) {
	content, err := s.contentRepo.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrContentNotFound
	}
	return toContentDTO(content)
}

// UpdateContent 只写入请求体中出现的字段, 显式 null 会清空可空列
func (s *ContentServiceImpl) UpdateContent(ctx context.Context, id uint64, updateDTO *dto.ContentUpdateDTO) (*dto.ContentDTO, error) {
	content, err := s.contentRepo.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrContentNotFound
	}

	updates := make(map[string]any)
	if updateDTO.Title.Set {
		if updateDTO.Title.Value == nil || strings.TrimSpace(*updateDTO.Title.Value) == "" {
			return nil, ErrTitleRequired
		}
		updates["title"] = *updateDTO.Title.Value
	}
	if updateDTO.Status.Set {
		if updateDTO.Status.Value == nil || !model.ContentStatus(*updateDTO.Status.Value).Valid() {
			return nil, ErrInvalidStatus
		}
		updates["status"] = *updateDTO.Status.Value
	}

	nullable := []struct {
		column string
		field  dto.OptionalString
	}{
		{"short_description", updateDTO.ShortDescription},
		{"long_description", updateDTO.LongDescription},
		{"image_url", updateDTO.ImageURL},
		{"industry", updateDTO.Industry},
		{"time_horizon", updateDTO.TimeHorizon},
	}
	for _, n := range nullable {
		if n.field.Set {
			updates[n.column] = n.field.Value
		}
	}

	if err = s.contentRepo.UpdateContent(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.GetContent(ctx, id)
}

func (s *ContentServiceImpl) DeleteContent(ctx context.Context, id uint64) error {
	exists, err := s.contentRepo.ExistsContent(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrContentNotFound
	}
	return s.contentRepo.DeleteContent(ctx, id)
}

// ensureUser id 为空时不校验
func (s *ContentServiceImpl) ensureUser(ctx context.Context, id *uint64) error {
	if id == nil {
		return nil
	}
	user, err := s.userRepo.GetUserById(ctx, *id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}

// normalizeEnum 枚举输入不区分大小写, 空值取 fallback
func normalizeEnum(value, fallback string) string {
	if value = util.NormalizeKey(value); value == "" {
		return fallback
	}
	return value
}

func toContentDTO(content *model.Content) (*dto.ContentDTO, error) {
	contentDTO := &dto.ContentDTO{}
	if err := copier.Copy(contentDTO, content); err != nil {
		return nil, err
	}
	return contentDTO, nil
}
