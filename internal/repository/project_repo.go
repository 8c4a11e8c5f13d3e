package repository

import (
	"gorm.io/gorm"

	"peertest/internal/model"
	"peertest/internal/pkg/database"
	pkgErrors "peertest/pkg/responses"
)

type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id int) (*model.Project, error)
	FindByNamespace(namespace string) ([]*model.Project, error)
	FindByOriginalProjectID(originalID int) ([]*model.Project, error)
	List() ([]*model.Project, error)
	Update(project *model.Project) error
	Delete(id int) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository() ProjectRepository {
	return &projectRepository{
		db: database.GetDB(),
	}
}

func (r *projectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建项目记录失败", err)
	}
	return nil
}

func (r *projectRepository) FindByID(id int) (*model.Project, error) {
	var project model.Project
	err := r.db.First(&project, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目记录失败", err)
	}
	return &project, nil
}

func (r *projectRepository) FindByNamespace(namespace string) ([]*model.Project, error) {
	var projects []*model.Project
	if err := r.db.Where("namespace = ?", namespace).Find(&projects).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目记录失败", err)
	}
	return projects, nil
}

func (r *projectRepository) FindByOriginalProjectID(originalID int) ([]*model.Project, error) {
	var projects []*model.Project
	if err := r.db.Where("original_project_id = ?", originalID).Find(&projects).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目记录失败", err)
	}
	return projects, nil
}

func (r *projectRepository) List() ([]*model.Project, error) {
	var projects []*model.Project
	if err := r.db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目记录失败", err)
	}
	return projects, nil
}

func (r *projectRepository) Update(project *model.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新项目记录失败", err)
	}
	return nil
}

func (r *projectRepository) Delete(id int) error {
	if err := r.db.Delete(&model.Project{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除项目记录失败", err)
	}
	return nil
}
