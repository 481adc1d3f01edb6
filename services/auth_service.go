package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/entity"
	"github.com/NecoOcean/sky-take-out/pkg/errs"
	"github.com/NecoOcean/sky-take-out/repository"
	"github.com/NecoOcean/sky-take-out/utils"
)

// ErrInvalidCredentials is returned for a bad username/email or password.
// Callers map it to 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	EmployeeRepo *repository.EmployeeRepository
	UserRepo     *repository.UserRepository
	JWTSecret    string
	JWTTTL       time.Duration
	Log          *zap.Logger
}

func NewAuthService(er *repository.EmployeeRepository, ur *repository.UserRepository, secret string, ttl time.Duration, log *zap.Logger) *AuthService {
	return &AuthService{EmployeeRepo: er, UserRepo: ur, JWTSecret: secret, JWTTTL: ttl, Log: log}
}

type LoginOut struct {
	Token string `json:"token"`
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (s *AuthService) EmployeeLogin(ctx context.Context, username, password string) (*LoginOut, error) {
	emp, err := s.EmployeeRepo.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, storeErr(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if emp.Status != entity.StatusOnSale {
		return nil, errs.PreconditionFailed("account is disabled")
	}
	token, err := utils.GenerateToken(emp.ID, utils.RoleAdmin, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	s.Log.Info("employee login", zap.Uint("id", emp.ID))
	return &LoginOut{Token: token, ID: emp.ID, Name: emp.Name, Role: utils.RoleAdmin}, nil
}

type RegisterIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

func (s *AuthService) Register(ctx context.Context, in *RegisterIn) (*LoginOut, error) {
	taken, err := s.UserRepo.CountByEmail(ctx, in.Email)
	if err != nil {
		return nil, storeErr(err)
	}
	if taken > 0 {
		return nil, errs.PreconditionFailed("email already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{Email: in.Email, Password: string(hash), Name: in.Name, Phone: in.Phone}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, storeErr(err)
	}
	token, err := utils.GenerateToken(user.ID, utils.RoleCustomer, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	s.Log.Info("user registered", zap.Uint("id", user.ID))
	return &LoginOut{Token: token, ID: user.ID, Name: user.Name, Role: utils.RoleCustomer}, nil
}

func (s *AuthService) UserLogin(ctx context.Context, email, password string) (*LoginOut, error) {
	user, err := s.UserRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, storeErr(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(user.ID, utils.RoleCustomer, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &LoginOut{Token: token, ID: user.ID, Name: user.Name, Role: utils.RoleCustomer}, nil
}

type EmployeeIn struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// CreateEmployee adds a staff account for the admin console.
func (s *AuthService) CreateEmployee(ctx context.Context, in *EmployeeIn) (*entity.Employee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	emp := &entity.Employee{
		Username: in.Username,
		Name:     in.Name,
		Password: string(hash),
		Phone:    in.Phone,
		Status:   entity.StatusOnSale,
	}
	if err := s.EmployeeRepo.Create(ctx, emp); err != nil {
		return nil, storeErr(err)
	}
	s.Log.Info("employee created", zap.Uint("id", emp.ID), zap.String("username", emp.Username))
	return emp, nil
}

func (s *AuthService) SetEmployeeStatus(ctx context.Context, id uint, status int) error {
	if status != entity.StatusOnSale && status != entity.StatusOffSale {
		return errs.InvalidArgument("status must be 0 or 1")
	}
	if _, err := s.EmployeeRepo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "employee not found")
	}
	return storeErr(s.EmployeeRepo.UpdateStatus(ctx, id, status, actorOf(ctx)))
}

func (s *AuthService) PageEmployees(ctx context.Context, name string, page, pageSize int) (*PageResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	emps, total, err := s.EmployeeRepo.Page(ctx, name, page, pageSize)
	if err != nil {
		return nil, storeErr(err)
	}
	return &PageResult{Total: total, Records: emps}, nil
}
