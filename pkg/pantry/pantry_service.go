package pantry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dispensa-backend/domain"
	"dispensa-backend/entities"
	"dispensa-backend/internal/utils/mailing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest) (domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest) error
		DeletePantryItem(ctx context.Context, id string) error
		GetPantryItems(ctx context.Context, location string, page, limit int) ([]domain.PantryItemResponse, int64, error)
		GetPantryItemByID(ctx context.Context, id string) (domain.PantryItemResponse, error)
		BulkMove(ctx context.Context, req domain.BulkMoveRequest) error
		MarkUsed(ctx context.Context, req domain.MarkUsedRequest) error
		BulkDelete(ctx context.Context, req domain.BulkDeleteRequest) error
		Snapshot(ctx context.Context) ([]domain.StockItem, error)
		SendExpiryDigest(ctx context.Context, req domain.ExpiryDigestRequest) (int, error)
	}

	pantryService struct {
		pantryRepository PantryRepository
	}
)

func NewPantryService(pantryRepository PantryRepository) PantryService {
	return &pantryService{pantryRepository: pantryRepository}
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	return &parsed, nil
}

func toResponse(item *entities.PantryItem) domain.PantryItemResponse {
	return domain.PantryItemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		Location:       item.Location,
		Category:       item.Category,
		Notes:          item.Notes,
		ExpirationDate: item.ExpirationDate,
		PurchaseDate:   item.PurchaseDate,
		CreatedAt:      item.CreatedAt,
	}
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest) (domain.PantryItemResponse, error) {
	if req.Quantity < 0 {
		return domain.PantryItemResponse{}, domain.ErrNegativeQuantity
	}

	expirationDate, err := parseDate(req.ExpirationDate)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}
	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	item := &entities.PantryItem{
		ID:             uuid.New(),
		Name:           req.Name,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		Location:       req.Location,
		Category:       req.Category,
		Notes:          req.Notes,
		ExpirationDate: expirationDate,
		PurchaseDate:   purchaseDate,
	}

	if err := s.pantryRepository.AddItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return toResponse(item), nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest) error {
	item, err := s.pantryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.ErrNegativeQuantity
		}
		item.Quantity = *req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Notes != "" {
		item.Notes = req.Notes
	}
	if req.ExpirationDate != "" {
		expirationDate, err := parseDate(req.ExpirationDate)
		if err != nil {
			return err
		}
		item.ExpirationDate = expirationDate
	}
	if req.PurchaseDate != "" {
		purchaseDate, err := parseDate(req.PurchaseDate)
		if err != nil {
			return err
		}
		item.PurchaseDate = purchaseDate
	}

	return s.pantryRepository.UpdateItem(ctx, item)
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id string) error {
	if _, err := s.pantryRepository.GetItemByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}
	return s.pantryRepository.DeleteItem(ctx, id)
}

func (s *pantryService) GetPantryItems(ctx context.Context, location string, page, limit int) ([]domain.PantryItemResponse, int64, error) {
	items, count, err := s.pantryRepository.GetItems(ctx, location, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toResponse(item))
	}
	return response, count, nil
}

func (s *pantryService) GetPantryItemByID(ctx context.Context, id string) (domain.PantryItemResponse, error) {
	item, err := s.pantryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrPantryItemNotFound
		}
		return domain.PantryItemResponse{}, err
	}
	return toResponse(item), nil
}

func (s *pantryService) BulkMove(ctx context.Context, req domain.BulkMoveRequest) error {
	return s.pantryRepository.UpdateLocation(ctx, req.IDs, req.Location)
}

// MarkUsed removes the items outright. Partial use does not decrement
// quantity; the user edits the item instead.
func (s *pantryService) MarkUsed(ctx context.Context, req domain.MarkUsedRequest) error {
	return s.pantryRepository.DeleteItems(ctx, req.IDs)
}

func (s *pantryService) BulkDelete(ctx context.Context, req domain.BulkDeleteRequest) error {
	return s.pantryRepository.DeleteItems(ctx, req.IDs)
}

// Snapshot maps the whole pantry to the value shape the availability
// engine consumes. Callers re-read between independent operations.
func (s *pantryService) Snapshot(ctx context.Context) ([]domain.StockItem, error) {
	items, err := s.pantryRepository.GetAllItems(ctx)
	if err != nil {
		return nil, err
	}

	stock := make([]domain.StockItem, 0, len(items))
	for _, item := range items {
		stock = append(stock, domain.StockItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		})
	}
	return stock, nil
}

func (s *pantryService) SendExpiryDigest(ctx context.Context, req domain.ExpiryDigestRequest) (int, error) {
	withinDays := req.WithinDays
	if withinDays <= 0 {
		withinDays = 3
	}

	deadline := time.Now().AddDate(0, 0, withinDays)
	items, err := s.pantryRepository.GetItemsExpiringBefore(ctx, deadline)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	var body strings.Builder
	body.WriteString("<h3>Items expiring soon</h3><ul>")
	for _, item := range items {
		body.WriteString(fmt.Sprintf(
			"<li>%s: %g %s (expires %s)</li>",
			item.Name, item.Quantity, item.Unit,
			item.ExpirationDate.Format("2006-01-02"),
		))
	}
	body.WriteString("</ul>")

	subject := fmt.Sprintf("Dispensa: %d items expiring within %d days", len(items), withinDays)
	if err := mailing.SendMail(req.Email, subject, body.String()); err != nil {
		return 0, err
	}
	return len(items), nil
}
