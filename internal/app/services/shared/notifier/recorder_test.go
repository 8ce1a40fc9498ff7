package notifier

import (
	"medicare-portal/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	recorder := NewRecorder()
	assert.Empty(t, recorder.Notifications())
	assert.Nil(t, recorder.Navigation())

	recorder.Notify(models.Notification{Kind: models.NotificationError, Message: "Failed, please try again"})
	recorder.Navigate("/doctor")
	recorder.Navigate("/")

	assert.Len(t, recorder.Notifications(), 1)
	assert.Equal(t, &models.Navigation{Target: "/", Full: true, Scroll: true}, recorder.Navigation())
}
