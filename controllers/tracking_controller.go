package controllers

import (
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/resp"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/tracking"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/utils"
	"github.com/gin-gonic/gin"
)

// TrackingController is the poll fallback for clients that cannot hold a
// websocket open. The pushed feed lives in ws.TrackHub.
type TrackingController struct {
	Trackers *tracking.Registry
}

func NewTrackingController(r *tracking.Registry) *TrackingController {
	return &TrackingController{Trackers: r}
}

// GET /track
func (h *TrackingController) Get(c *gin.Context) {
	tr := h.Trackers.Get(utils.CurrentUserID(c))
	resp.OK(c, gin.H{"status": string(tr.Current()), "steps": tracking.Steps})
}
