package api

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/parakeet-gateway/errors"
	"github.com/skillsenselab/parakeet-gateway/logger"
	"github.com/skillsenselab/parakeet-gateway/observability"
	"github.com/skillsenselab/parakeet-gateway/server"
	"github.com/skillsenselab/parakeet-gateway/transcription"
)

// Transcriber is the service surface the handler needs.
type Transcriber interface {
	// Loaded reports whether a backend is ready to take requests.
	Loaded() bool
	// Transcribe runs speech-to-text on the audio file at path and returns
	// the backend's raw result.
	Transcribe(ctx context.Context, audioPath string) (any, error)
	// Backend returns the loaded provider, or false when none is loaded.
	Backend() (transcription.Provider, bool)
}

// Handler serves the transcription API.
type Handler struct {
	svc        Transcriber
	scratchDir string // empty means the OS temp dir
	staticDir  string // directory searched for index.html on GET /
	metrics    *observability.GatewayMetrics
	log        *logger.Logger
}

// NewHandler creates a Handler. metrics may be nil when telemetry is
// disabled.
func NewHandler(svc Transcriber, scratchDir, staticDir string, metrics *observability.GatewayMetrics) *Handler {
	return &Handler{
		svc:        svc,
		scratchDir: scratchDir,
		staticDir:  staticDir,
		metrics:    metrics,
		log:        logger.Get("api"),
	}
}

// Register mounts the API routes on the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.POST("/v1/audio/transcriptions", h.Transcriptions)
	r.GET("/", h.Root)
}

// Transcriptions handles POST /v1/audio/transcriptions. The upload is
// spooled to a scratch .wav file which is removed when the request finishes,
// whether it succeeded or not.
func (h *Handler) Transcriptions(c *gin.Context) {
	ctx := c.Request.Context()

	backendName := "none"
	if b, ok := h.svc.Backend(); ok {
		backendName = b.Name()
	}
	h.metrics.RecordRequest(ctx, backendName)

	// Reject before touching the upload when no model is loaded.
	if !h.svc.Loaded() {
		appErr := apperrors.EngineNotLoaded()
		h.metrics.RecordFailure(ctx, backendName, string(appErr.Code))
		c.JSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}

	upload, err := c.FormFile("file")
	if err != nil {
		appErr := apperrors.MissingField("file")
		h.metrics.RecordFailure(ctx, backendName, string(appErr.Code))
		c.JSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}

	responseFormat := c.DefaultPostForm("response_format", "json")
	model := c.PostForm("model")
	// The timestamp is an opaque passthrough: a present-but-empty form value
	// is echoed verbatim, only an absent key yields null.
	recordingTimestamp, hasRecordingTimestamp := c.GetPostForm("recording_timestamp")

	scratchPath, err := h.spoolUpload(upload)
	if err != nil {
		h.metrics.RecordFailure(ctx, backendName, string(apperrors.ErrCodeInternal))
		server.RespondWithError(c, err)
		return
	}
	defer func() {
		// Scratch cleanup is best-effort; a leftover file must never fail
		// the request.
		if err := os.Remove(scratchPath); err != nil {
			h.log.Debug("Scratch file cleanup failed", map[string]interface{}{
				"path":  scratchPath,
				"error": err.Error(),
			})
		}
	}()

	ctx, span := observability.Tracer("api").Start(ctx, "transcribe")
	start := time.Now()
	raw, err := h.svc.Transcribe(ctx, scratchPath)
	span.End()
	if err != nil {
		code := string(apperrors.ErrCodeTranscriptionFailed)
		if appErr, ok := apperrors.AsAppError(err); ok {
			code = string(appErr.Code)
		}
		h.metrics.RecordFailure(ctx, backendName, code)
		server.RespondWithError(c, err)
		return
	}
	h.metrics.RecordDuration(ctx, backendName, time.Since(start))

	text := transcription.CleanText(transcription.ExtractText(raw))
	segments := transcription.ExtractSegments(raw)

	h.log.Info("Transcription completed", map[string]interface{}{
		"backend":     backendName,
		"model":       model,
		"filename":    upload.Filename,
		"segments":    len(segments),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if responseFormat == "text" {
		c.String(http.StatusOK, text)
		return
	}

	result := transcription.Transcript{
		Text:     text,
		Segments: segments,
	}
	if hasRecordingTimestamp {
		result.RecordingTimestamp = &recordingTimestamp
	}
	c.JSON(http.StatusOK, result)
}

// spoolUpload copies the uploaded file to a scratch .wav file and returns
// its path.
func (h *Handler) spoolUpload(upload *multipart.FileHeader) (string, error) {
	src, err := upload.Open()
	if err != nil {
		return "", apperrors.Internal(err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(h.scratchDir, "upload-*.wav")
	if err != nil {
		return "", apperrors.Internal(err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", apperrors.Internal(err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", apperrors.Internal(err)
	}
	return dst.Name(), nil
}

// Root handles GET /. When a static index.html exists it is served;
// otherwise a small status document reports whether the model is loaded.
func (h *Handler) Root(c *gin.Context) {
	if h.staticDir != "" {
		index := filepath.Join(h.staticDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
	}

	status := "ok"
	if !h.svc.Loaded() {
		status = "error"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}
