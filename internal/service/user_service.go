package service

import (
	"course_qa_backend/internal/model"
	"course_qa_backend/internal/repository"
	"course_qa_backend/internal/util"
)

// UserService 管理员视角的用户管理
type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

type UpdateRolesRequest struct {
	Roles []model.Role `json:"roles" binding:"required"`
}

func (s *UserService) Get(username string) (*model.User, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return nil, orNotFound(err, util.ErrUserNotFound, "user lookup")
	}
	user.Password = ""
	return user, nil
}

// List 全部用户，按用户名排序
func (s *UserService) List() ([]model.User, error) {
	users, err := s.UserRepo.FindAll()
	if err != nil {
		return nil, util.StoreError("users", err)
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// UpdateRoles 整体替换角色标签集合，标签必须是已枚举的角色
func (s *UserService) UpdateRoles(username string, roles []model.Role) error {
	for _, r := range roles {
		if !model.ValidRole(r) {
			return util.ErrInvalidRole
		}
	}

	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return orNotFound(err, util.ErrUserNotFound, "user lookup")
	}
	user.SetRoles(roles)
	if err := s.UserRepo.Update(user); err != nil {
		return util.StoreError("user roles update", err)
	}
	return nil
}

// Delete 删除用户并级联清理其受信边、评审、申请与记分卡
func (s *UserService) Delete(username string) error {
	if _, err := s.UserRepo.FindByUsername(username); err != nil {
		return orNotFound(err, util.ErrUserNotFound, "user lookup")
	}
	if err := s.UserRepo.Delete(username); err != nil {
		return util.StoreError("user delete", err)
	}
	return nil
}

// CountAdmins 持有 admin 标签的用户数，整词匹配
func (s *UserService) CountAdmins() (int, error) {
	users, err := s.UserRepo.FindAll()
	if err != nil {
		return 0, util.StoreError("users", err)
	}
	count := 0
	for i := range users {
		if users[i].HasRole(model.RoleAdmin) {
			count++
		}
	}
	return count, nil
}
