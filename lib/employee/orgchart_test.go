package employeehandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	dbmodels "hrms-backend/models/db"
)

func employeeRec(id string, managerID *string) dbmodels.Employee {
	rec := dbmodels.Employee{ManagerID: managerID}
	rec.ID = id
	return rec
}

func TestBuildOrgTree(t *testing.T) {
	ceo := "ceo"
	lead := "lead"

	t.Run(`tree structure check`, func(t *testing.T) {
		recs := []dbmodels.Employee{
			employeeRec("ceo", nil),
			employeeRec("lead", &ceo),
			employeeRec("dev-1", &lead),
			employeeRec("dev-2", &lead),
		}
		roots := BuildOrgTree(recs)
		require.Len(t, roots, 1)
		require.Equal(t, "ceo", roots[0].Employee.ID)
		require.Len(t, roots[0].Reports, 1)
		require.Equal(t, "lead", roots[0].Reports[0].Employee.ID)
		require.Len(t, roots[0].Reports[0].Reports, 2)
	})

	t.Run(`manager outside selection becomes root check`, func(t *testing.T) {
		gone := "former-manager"
		recs := []dbmodels.Employee{
			employeeRec("dev-1", &gone),
		}
		roots := BuildOrgTree(recs)
		require.Len(t, roots, 1)
		require.Equal(t, "dev-1", roots[0].Employee.ID)
	})

	t.Run(`empty selection check`, func(t *testing.T) {
		require.Empty(t, BuildOrgTree(nil))
	})
}
