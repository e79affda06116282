package notificationhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecipients(t *testing.T) {
	managerID := "manager-1"

	t.Run(`full chain check`, func(t *testing.T) {
		got := Recipients("emp-1", &managerID, []string{"hr-1", "hr-2"}, true)
		require.Equal(t, []string{"emp-1", "manager-1", "hr-1", "hr-2"}, got)
	})

	t.Run(`without self check`, func(t *testing.T) {
		got := Recipients("emp-1", &managerID, []string{"hr-1"}, false)
		require.Equal(t, []string{"manager-1", "hr-1"}, got)
	})

	t.Run(`self in staff not duplicated check`, func(t *testing.T) {
		// HR подает заявку сам на себя: в списке руководства он не дублируется
		got := Recipients("hr-1", &managerID, []string{"hr-1", "hr-2"}, true)
		require.Equal(t, []string{"hr-1", "manager-1", "hr-2"}, got)

		got = Recipients("hr-1", &managerID, []string{"hr-1", "hr-2"}, false)
		require.Equal(t, []string{"manager-1", "hr-2"}, got)
	})

	t.Run(`manager is staff check`, func(t *testing.T) {
		got := Recipients("emp-1", &managerID, []string{"manager-1", "hr-1"}, true)
		require.Equal(t, []string{"emp-1", "manager-1", "hr-1"}, got)
	})

	t.Run(`no manager check`, func(t *testing.T) {
		got := Recipients("emp-1", nil, []string{"hr-1"}, true)
		require.Equal(t, []string{"emp-1", "hr-1"}, got)
	})
}
