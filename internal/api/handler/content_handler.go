package handler

import (
	"TrendRadar/internal/api/dto"
	"TrendRadar/internal/pkg/response"
	"TrendRadar/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentSvc service.ContentService
}

func NewContentHandler(contentSvc service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
	}
}

func (s *ContentHandler) ListContents(c *gin.Context) {
	var query dto.ContentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	contents, err := s.contentSvc.ListContents(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contents)
}

func (s *ContentHandler) CreateContent(c *gin.Context) {
	var req dto.ContentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	content, err := s.contentSvc.CreateContent(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, content)
}

// CreateSlimContent 请求体缺失或非法时按空对象处理, 由字段校验给出提示
func (s *ContentHandler) CreateSlimContent(c *gin.Context) {
	var req dto.ContentSlimCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		req = dto.ContentSlimCreateDTO{}
	}

	content, err := s.contentSvc.CreateSlimContent(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, content)
}

func (s *ContentHandler) UploadContent(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrFileMissing)
		return
	}
	if fileHeader.Filename == "" {
		response.Error(c, service.ErrEmptyFilename)
		return
	}

	var form dto.ContentUploadForm
	if err = c.ShouldBind(&form); err != nil {
		response.Error(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	upload := &dto.UploadFile{
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}
	result, err := s.contentSvc.UploadContent(c.Request.Context(), &form, upload, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

func (s *ContentHandler) GetContent(c *gin.Context) {
	id, err := parseID(c, "id", service.ErrContentNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	content, err := s.contentSvc.GetContent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, content)
}

func (s *ContentHandler) UpdateContent(c *gin.Context) {
	id, err := parseID(c, "id", service.ErrContentNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ContentUpdateDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	content, err := s.contentSvc.UpdateContent(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, content)
}

func (s *ContentHandler) DeleteContent(c *gin.Context) {
	id, err := parseID(c, "id", service.ErrContentNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.contentSvc.DeleteContent(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Content deleted successfully")
}
