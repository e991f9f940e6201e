package kakao

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kakao-support-chatbot/internal/chat"
	"kakao-support-chatbot/internal/model"
	pkgKakao "kakao-support-chatbot/pkg/kakao"
)

// HandleWebhook answers one Kakao skill request. Kakao expects the
// payload in the HTTP response body, so the turn runs synchronously
// inside the request, bounded by the engine client's timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWebhookReq(c)
	if err != nil {
		return
	}

	sc := model.Scope{UserID: req.User.ID}
	output, err := h.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{
		Utterance: req.UserRequest.Utterance,
	})
	if err != nil {
		h.l.Errorf(ctx, "kakao webhook: ProcessMessage for %s failed: %v", req.User.ID, err)
		c.JSON(http.StatusInternalServerError, pkgKakao.NewTextResponse(msgServerError))
		return
	}

	c.JSON(http.StatusOK, output.Response)
}

// HandleFriendEvent reacts to friend add/delete events.
func (h *handler) HandleFriendEvent(c *gin.Context) {
	h.handleLifecycle(c, "friend")
}

// HandleChatroomEvent reacts to chatroom join/leave events.
func (h *handler) HandleChatroomEvent(c *gin.Context) {
	h.handleLifecycle(c, "chatroom")
}

func (h *handler) handleLifecycle(c *gin.Context, kind string) {
	ctx := c.Request.Context()

	req, err := h.processEventReq(c)
	if err != nil {
		return
	}

	sc := model.Scope{UserID: req.User.ID}
	output, err := h.uc.HandleLifecycle(ctx, sc, chat.LifecycleInput{Action: req.Action})
	if err != nil {
		h.l.Errorf(ctx, "kakao %s event: action %q for %s failed: %v", kind, req.Action, req.User.ID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if output.Response != nil {
		c.JSON(http.StatusOK, *output.Response)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
