package router

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"resume-match-go/internal/api/handler"
	"resume-match-go/internal/storage"
)

// matchRequest 匹配与技能差距接口的请求体
type matchRequest struct {
	ResumeID       uint   `json:"resume_id"`
	JobDescription string `json:"job_description"`
}

// RegisterRoutes 注册全部API路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler) {
	api := h.Group("/api")

	api.POST("/upload", func(c context.Context, ctx *app.RequestContext) {
		fileHeader, err := ctx.FormFile("resume")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "No file provided"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开上传文件失败"})
			return
		}
		defer file.Close()

		fileBytes, err := io.ReadAll(file)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "读取上传文件失败"})
			return
		}

		resp, err := resumeHandler.HandleUpload(c, fileBytes, fileHeader.Filename)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/analyze/:resume_id", func(c context.Context, ctx *app.RequestContext) {
		resumeID, ok := pathResumeID(ctx)
		if !ok {
			return
		}
		resp, err := resumeHandler.HandleAnalyze(c, resumeID)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/match", func(c context.Context, ctx *app.RequestContext) {
		req, ok := bindMatchRequest(ctx)
		if !ok {
			return
		}
		resp, err := resumeHandler.HandleMatch(c, req.ResumeID, req.JobDescription)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/skill-gap", func(c context.Context, ctx *app.RequestContext) {
		req, ok := bindMatchRequest(ctx)
		if !ok {
			return
		}
		resp, err := resumeHandler.HandleSkillGap(c, req.ResumeID, req.JobDescription)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/recommendations/:resume_id", func(c context.Context, ctx *app.RequestContext) {
		resumeID, ok := pathResumeID(ctx)
		if !ok {
			return
		}
		resp, err := resumeHandler.HandleRecommendations(c, resumeID)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/skill-recommendations/:resume_id", func(c context.Context, ctx *app.RequestContext) {
		resumeID, ok := pathResumeID(ctx)
		if !ok {
			return
		}
		targetRole := ctx.Query("target_role")
		if targetRole == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Missing required fields"})
			return
		}
		resp, err := resumeHandler.HandleSkillRecommendations(c, resumeID, targetRole)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/stats/:resume_id", func(c context.Context, ctx *app.RequestContext) {
		resumeID, ok := pathResumeID(ctx)
		if !ok {
			return
		}
		resp, err := resumeHandler.HandleStats(c, resumeID)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/ats-score/:resume_id", func(c context.Context, ctx *app.RequestContext) {
		resumeID, ok := pathResumeID(ctx)
		if !ok {
			return
		}
		resp, err := resumeHandler.HandleATSScore(c, resumeID)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/resumes", func(c context.Context, ctx *app.RequestContext) {
		resp, err := resumeHandler.HandleListResumes(c)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/matches/:resume_id", func(c context.Context, ctx *app.RequestContext) {
		resumeID, ok := pathResumeID(ctx)
		if !ok {
			return
		}
		resp, err := resumeHandler.HandleMatchHistory(c, resumeID)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}

// pathResumeID 解析路径里的简历ID，失败时直接写400响应
func pathResumeID(ctx *app.RequestContext) (uint, bool) {
	raw := ctx.Param("resume_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Invalid resume id"})
		return 0, false
	}
	return uint(id), true
}

// bindMatchRequest 解析匹配类接口的请求体，失败时直接写400响应
func bindMatchRequest(ctx *app.RequestContext) (*matchRequest, bool) {
	var req matchRequest
	if err := ctx.BindJSON(&req); err != nil || req.ResumeID == 0 || req.JobDescription == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Missing required fields"})
		return nil, false
	}
	return &req, true
}

// writeError 业务错误到HTTP状态码的映射
func writeError(ctx *app.RequestContext, err error) {
	var invalid *handler.ErrInvalidUpload
	switch {
	case errors.Is(err, storage.ErrResumeNotFound):
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "Resume not found"})
	case errors.As(err, &invalid):
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": invalid.Reason})
	default:
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
	}
}
