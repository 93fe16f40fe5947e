package music

import (
	"encoding/json"
	"net/http"

	"github.com/vstanisic/fitpal/internal/telemetry/tracing"
	"github.com/vstanisic/fitpal/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	iosLink      = "youtube-music://"
	androidLink  = "vnd.youtube.music://"
	fallbackLink = "https://music.youtube.com"
)

// LinkResponse holds the deep link for the requested platform, plus the
// browser fallback used when the music app is not installed.
type LinkResponse struct {
	Link     string `json:"link"`
	Fallback string `json:"fallback"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (handler *Handler) HandleGetLink(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.music.getLink")
	defer span.End()

	platform := r.URL.Query().Get("platform")
	span.SetAttributes(attribute.String("platform", platform))

	link := fallbackLink
	switch platform {
	case "ios":
		link = iosLink
	case "android":
		link = androidLink
	}

	respJson, err := json.Marshal(LinkResponse{
		Link:     link,
		Fallback: fallbackLink,
	})
	if err != nil {
		log.Errorf("failed to marshal music link response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
