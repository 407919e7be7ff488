package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
	repo "github.com/oksasatya/go-users-tasks-api/internal/domain/repository"
)

// TaskService implements task use cases for the authenticated user.
type TaskService struct {
	Repo    repo.TaskRepository
	Logger  *logrus.Logger
	PerPage int
}

func NewTaskService(tasks repo.TaskRepository, logger *logrus.Logger, perPage int) *TaskService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &TaskService{Repo: tasks, Logger: logger, PerPage: perPage}
}

type TaskPage struct {
	Items      []entity.Task
	Pagination entity.Pagination
}

func (s *TaskService) GetTasksByPage(ctx context.Context, userID string, page, perPage int, name string, status *int) (*TaskPage, error) {
	page, perPage = normalizePage(page, perPage, s.PerPage)
	items, total, err := s.Repo.GetTasksByPage(ctx, userID, page, perPage, name, status)
	if err != nil {
		return nil, err
	}
	return &TaskPage{Items: items, Pagination: entity.NewPagination(total, page, perPage)}, nil
}

func (s *TaskService) GetAll(ctx context.Context, userID string) ([]entity.Task, error) {
	return s.Repo.GetAll(ctx, userID)
}

func (s *TaskService) Search(ctx context.Context, userID, query string, status *int) ([]entity.Task, error) {
	return s.Repo.Search(ctx, userID, query, status)
}

func (s *TaskService) GetOne(ctx context.Context, userID, id string) (*entity.Task, error) {
	return s.Repo.GetByID(ctx, userID, id)
}

func (s *TaskService) Create(ctx context.Context, userID string, in CreateTaskInput) (*entity.Task, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	name, err := entity.ValidateTaskName(in.Name)
	if err != nil {
		return nil, err
	}
	status := entity.TaskStatusTodo
	if in.Status != nil {
		if status, err = entity.ValidateTaskStatus(*in.Status); err != nil {
			return nil, err
		}
	}

	t := &entity.Task{Name: name, Description: in.Description, Status: status, UserID: userID}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": userID, "task_id": t.ID}).Debug("task created")
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, userID, id string, in UpdateTaskInput) (*entity.Task, error) {
	t, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.Name != nil {
		if t.Name, err = entity.ValidateTaskName(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Status != nil {
		if t.Status, err = entity.ValidateTaskStatus(*in.Status); err != nil {
			return nil, err
		}
	}
	if err := s.Repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Repo.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, userID, id)
}
