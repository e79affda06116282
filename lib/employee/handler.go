package employeehandler

import (
	"time"

	"github.com/pkg/errors"

	"hrms-backend/db"
	employeestore "hrms-backend/lib/employee/store"
	authutils "hrms-backend/lib/utils/auth-utils"
	"hrms-backend/models"
	employeeapimodels "hrms-backend/models/api/employee"
	dbmodels "hrms-backend/models/db"
)

var (
	ErrNotFound    = errors.New("сотрудник не найден")
	ErrEmailExists = errors.New("сотрудник с такой почтой уже существует")
)

type Provider interface {
	Create(req employeeapimodels.EmployeeCreateRequest) (id string, err error)
	Update(id string, req employeeapimodels.EmployeeUpdateRequest) error
	Deactivate(id string) error
	Delete(id string) error
	GetByID(id string) (rec *employeeapimodels.Employee, err error)
	GetList(onlyActive bool) (list []employeeapimodels.Employee, err error)
	OrgChart() (roots []employeeapimodels.OrgNode, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) Create(req employeeapimodels.EmployeeCreateRequest) (id string, err error) {
	existed, err := i.store.FindByEmail(req.Email)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", ErrEmailExists
	}
	hash, err := authutils.HashPassword(req.Password)
	if err != nil {
		return "", err
	}
	role := models.UserRole(req.Role)
	if role == "" {
		role = models.UserRoleEmployee
	}
	rec := dbmodels.Employee{
		Email:       req.Email,
		Password:    hash,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Department:  req.Department,
		Designation: req.Designation,
		Role:        role,
		ManagerID:   req.ManagerID,
		IsActive:    true,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, req employeeapimodels.EmployeeUpdateRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	updMap := map[string]interface{}{}
	if req.FirstName != nil {
		updMap["FirstName"] = *req.FirstName
	}
	if req.LastName != nil {
		updMap["LastName"] = *req.LastName
	}
	if req.Department != nil {
		updMap["Department"] = *req.Department
	}
	if req.Designation != nil {
		updMap["Designation"] = *req.Designation
	}
	if req.Role != nil {
		updMap["Role"] = *req.Role
	}
	if req.ManagerID != nil {
		updMap["ManagerID"] = *req.ManagerID
	}
	if req.IsActive != nil {
		updMap["IsActive"] = *req.IsActive
		// при выводе за штат фиксируется дата начала простоя
		if !*req.IsActive {
			updMap["BenchSince"] = time.Now()
		}
	}
	if len(updMap) == 0 {
		return nil
	}
	return i.store.Update(id, updMap)
}

// Deactivate - основной путь вывода сотрудника: мягкое отключение
func (i impl) Deactivate(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	return i.store.Update(id, map[string]interface{}{
		"IsActive":   false,
		"BenchSince": time.Now(),
	})
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) GetByID(id string) (rec *employeeapimodels.Employee, err error) {
	dbRec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dbRec == nil {
		return nil, nil
	}
	model := dbRec.ToModel()
	return &model, nil
}

func (i impl) GetList(onlyActive bool) (list []employeeapimodels.Employee, err error) {
	recs, err := i.store.GetList(onlyActive)
	if err != nil {
		return nil, err
	}
	list = make([]employeeapimodels.Employee, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

// OrgChart - дерево подчинённости по ссылкам на руководителя
func (i impl) OrgChart() (roots []employeeapimodels.OrgNode, err error) {
	recs, err := i.store.GetList(true)
	if err != nil {
		return nil, err
	}
	return BuildOrgTree(recs), nil
}

func BuildOrgTree(recs []dbmodels.Employee) []employeeapimodels.OrgNode {
	byManager := map[string][]dbmodels.Employee{}
	ids := map[string]bool{}
	for _, rec := range recs {
		ids[rec.ID] = true
	}
	roots := []dbmodels.Employee{}
	for _, rec := range recs {
		// сотрудник с руководителем вне выборки считается корнем
		if rec.ManagerID == nil || !ids[*rec.ManagerID] {
			roots = append(roots, rec)
			continue
		}
		byManager[*rec.ManagerID] = append(byManager[*rec.ManagerID], rec)
	}
	var build func(rec dbmodels.Employee) employeeapimodels.OrgNode
	build = func(rec dbmodels.Employee) employeeapimodels.OrgNode {
		node := employeeapimodels.OrgNode{Employee: rec.ToModel()}
		for _, report := range byManager[rec.ID] {
			node.Reports = append(node.Reports, build(report))
		}
		return node
	}
	result := make([]employeeapimodels.OrgNode, 0, len(roots))
	for _, rec := range roots {
		result = append(result, build(rec))
	}
	return result
}
