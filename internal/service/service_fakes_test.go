package service

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"peertest/internal/model"
	"peertest/internal/pkg/config"
	"peertest/internal/pkg/crypto"
	"peertest/internal/pkg/git/api"
	pkgErrors "peertest/pkg/responses"
)

const testAESKey = "0123456789abcdef0123456789abcdef"

func newTestConfig() *config.Config {
	return &config.Config{
		Crypto: config.CryptoConfig{AESKey: testAESKey},
	}
}

// newTestUser 构造带加密GitLab Token的用户
func newTestUser(t *testing.T, id int64, username string) *model.User {
	t.Helper()
	token, err := crypto.Encrypt(testAESKey, "glpat-"+username)
	require.NoError(t, err)
	return &model.User{
		BaseModel:       model.BaseModel{ID: id},
		Username:        username,
		Email:           username + "@example.com",
		GitlabURL:       "https://gitlab.example.com",
		GitlabUserToken: token,
		IsActive:        true,
	}
}

// fakeUserRepo 内存用户仓库
type fakeUserRepo struct {
	users map[int64]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[int64]*model.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == 0 {
		user.ID = int64(len(r.users) + 1)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, pkgErrors.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, pkgErrors.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id int64) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, pkgErrors.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindAll() ([]*model.User, error) {
	users := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(id int64) error {
	return nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	if _, ok := r.users[id]; !ok {
		return pkgErrors.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

// fakeProjectRepo 内存项目仓库, 记录本地删除调用
type fakeProjectRepo struct {
	records map[int]*model.Project
	deleted []int
}

func newFakeProjectRepo(records ...*model.Project) *fakeProjectRepo {
	r := &fakeProjectRepo{records: make(map[int]*model.Project)}
	for _, p := range records {
		r.records[p.ID] = p
	}
	return r
}

func (r *fakeProjectRepo) Create(project *model.Project) error {
	r.records[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) FindByID(id int) (*model.Project, error) {
	p, ok := r.records[id]
	if !ok {
		return nil, pkgErrors.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeProjectRepo) FindByNamespace(namespace string) ([]*model.Project, error) {
	var result []*model.Project
	for _, p := range r.records {
		if p.Namespace == namespace {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) FindByOriginalProjectID(originalID int) ([]*model.Project, error) {
	var result []*model.Project
	for _, p := range r.records {
		if p.OriginalProjectID == originalID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) List() ([]*model.Project, error) {
	records := make([]*model.Project, 0, len(r.records))
	for _, p := range r.records {
		records = append(records, p)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (r *fakeProjectRepo) Update(project *model.Project) error {
	r.records[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) Delete(id int) error {
	r.deleted = append(r.deleted, id)
	delete(r.records, id)
	return nil
}

// stubGateway 只实现被测路径用到的方法, 其余方法走内嵌接口(调用即panic)
type stubGateway struct {
	api.Gateway

	user        *api.UserInfo
	deleteErrs  map[int]error
	deleteCalls []int
}

func (g *stubGateway) CurrentUser() (*api.UserInfo, error) {
	return g.user, nil
}

func (g *stubGateway) DeleteProject(projectID int) error {
	g.deleteCalls = append(g.deleteCalls, projectID)
	return g.deleteErrs[projectID]
}

// stubConnector 不区分Token的会话工厂
func stubConnector(gw api.Gateway) api.Connector {
	return func(baseURL, token string) (api.Gateway, error) {
		return gw, nil
	}
}
