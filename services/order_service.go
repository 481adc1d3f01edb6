package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/entity"
	"github.com/NecoOcean/sky-take-out/pkg/errs"
	"github.com/NecoOcean/sky-take-out/repository"
)

// OrderNotifier receives new-order events after the submit transaction
// commits. Implemented by the websocket hub; nil disables notification.
type OrderNotifier interface {
	NotifyNewOrder(orderID uint, number string, amount int64)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Notifier OrderNotifier
	Log      *zap.Logger
}

func NewOrderService(db *gorm.DB, or *repository.OrderRepository, cr *repository.CartRepository, n OrderNotifier, log *zap.Logger) *OrderService {
	return &OrderService{DB: db, Repo: or, CartRepo: cr, Notifier: n, Log: log}
}

type SubmitOrderIn struct {
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Remark  string `json:"remark"`
}

// Submit turns the customer's cart into an order. Order row, detail rows and
// the cart clear all commit together; an empty cart is refused.
func (s *OrderService) Submit(ctx context.Context, userID uint, in *SubmitOrderIn) (*entity.Order, error) {
	lines, err := s.CartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(lines) == 0 {
		return nil, errs.PreconditionFailed("shopping cart is empty")
	}

	now := time.Now()
	order := &entity.Order{
		Number:       fmt.Sprintf("%d%04d", now.UnixMilli(), userID%10000),
		UserID:       userID,
		Status:       entity.OrderStatusPending,
		Address:      in.Address,
		Phone:        in.Phone,
		Remark:       in.Remark,
		CheckoutTime: now,
	}
	for _, line := range lines {
		order.Amount += line.Amount * int64(line.Number)
		order.Details = append(order.Details, entity.OrderDetail{
			DishID:    line.DishID,
			SetmealID: line.SetmealID,
			Flavor:    line.Flavor,
			Name:      line.Name,
			Image:     line.Image,
			Number:    line.Number,
			Amount:    line.Amount,
		})
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		return s.CartRepo.ClearByUser(tx, userID)
	})
	if err != nil {
		return nil, storeErr(err)
	}

	if s.Notifier != nil {
		s.Notifier.NotifyNewOrder(order.ID, order.Number, order.Amount)
	}
	s.Log.Info("order submitted",
		zap.Uint("id", order.ID), zap.String("number", order.Number), zap.Int64("amount", order.Amount))
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id uint) (*entity.Order, error) {
	order, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "order not found")
	}
	return order, nil
}

func (s *OrderService) ListMine(ctx context.Context, userID uint) ([]entity.Order, error) {
	orders, err := s.Repo.ListByUser(ctx, userID)
	return orders, storeErr(err)
}

func (s *OrderService) Page(ctx context.Context, status *int, page, pageSize int) (*PageResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	orders, total, err := s.Repo.Page(ctx, status, page, pageSize)
	if err != nil {
		return nil, storeErr(err)
	}
	return &PageResult{Total: total, Records: orders}, nil
}

// allowed status transitions
var orderTransitions = map[int][]int{
	entity.OrderStatusConfirmed: {entity.OrderStatusPending},
	entity.OrderStatusCompleted: {entity.OrderStatusConfirmed},
	entity.OrderStatusCancelled: {entity.OrderStatusPending, entity.OrderStatusConfirmed},
}

func (s *OrderService) SetStatus(ctx context.Context, id uint, status int) error {
	from, ok := orderTransitions[status]
	if !ok {
		return errs.InvalidArgument("unknown order status")
	}
	order, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "order not found")
	}
	allowed := false
	for _, f := range from {
		if order.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return errs.PreconditionFailed("order status transition not allowed")
	}
	if err := s.Repo.UpdateStatus(ctx, id, status, actorOf(ctx)); err != nil {
		return storeErr(err)
	}
	s.Log.Info("order status changed", zap.Uint("id", id), zap.Int("status", status))
	return nil
}
