package playback

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	uuid "github.com/satori/go.uuid"

	"github.com/jacob15803/StreamSphere-sub000/services/access"
	"github.com/jacob15803/StreamSphere-sub000/services/auth"
	sv "github.com/jacob15803/StreamSphere-sub000/services/common"
	"github.com/jacob15803/StreamSphere-sub000/services/playback"
)

type urlArgs struct {
	mediaID uuid.UUID
	episode *access.EpisodeRef
}

func (s *Handler) bindURLArgs(c *gin.Context) (*urlArgs, error) {
	mediaID, err := uuid.FromString(c.Param("media_id"))
	if err != nil {
		return nil, sv.ValidationError("media_id", "must be a uuid")
	}
	args := &urlArgs{
		mediaID: mediaID,
	}
	seasonStr := c.Query("season")
	episodeStr := c.Query("episode")
	if seasonStr == "" && episodeStr == "" {
		return args, nil
	}
	if seasonStr == "" || episodeStr == "" {
		return nil, sv.ValidationError("episode", "both season and episode must be set")
	}
	season, err := strconv.Atoi(seasonStr)
	if err != nil {
		return nil, sv.ValidationError("season", "must be an integer")
	}
	episode, err := strconv.Atoi(episodeStr)
	if err != nil {
		return nil, sv.ValidationError("episode", "must be an integer")
	}
	args.episode = &access.EpisodeRef{
		Season:  season,
		Episode: episode,
	}
	return args, nil
}

type urlResponse struct {
	AccessTier  string `json:"access_tier"`
	TrailerOnly bool   `json:"trailer_only"`
	URL         string `json:"url"`
	PosterURL   string `json:"poster_url,omitempty"`
}

func (s *Handler) url(c *gin.Context) {
	args, err := s.bindURLArgs(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	u := auth.GetUserFromContext(c)
	if u.Expired {
		abortWithError(c, sv.ErrAuthRequired)
		return
	}
	res, err := s.pb.GetURL(c.Request.Context(), &playback.URLRequest{
		User:    u,
		MediaID: args.mediaID,
		Episode: args.episode,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, urlResponse{
		AccessTier:  string(res.Tier),
		TrailerOnly: res.TrailerOnly,
		URL:         res.URL,
		PosterURL:   res.PosterURL,
	})
}

type trailerResponse struct {
	URL       string `json:"url"`
	PosterURL string `json:"poster_url,omitempty"`
}

func (s *Handler) trailer(c *gin.Context) {
	mediaID, err := uuid.FromString(c.Param("media_id"))
	if err != nil {
		abortWithError(c, sv.ValidationError("media_id", "must be a uuid"))
		return
	}
	res, err := s.pb.GetTrailer(c.Request.Context(), mediaID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, trailerResponse{
		URL:       res.URL,
		PosterURL: res.PosterURL,
	})
}
