// internal/service/admin/admin.go
package admin

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"rainerio-service/internal/domain/seller"
	"rainerio-service/internal/domain/vehicle"
	xerrors "rainerio-service/internal/pkg/errors"
	"rainerio-service/internal/pkg/money"
	"rainerio-service/internal/service/catalog"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// DefaultVehicleImage covers vehicles submitted without a photo.
const DefaultVehicleImage = "https://images.unsplash.com/photo-1494905998402-395d579af36f?q=80&w=2070&auto=format&fit=crop"

// ImageUploader stores one image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

// Service runs the admin panel's edit workflows. Vehicle edits always
// produce the full desired collection locally and delegate to the store's
// full-replace sync, never a single-record write, so local and persisted
// state cannot drift apart. Seller edits are per-record upserts/deletes.
type Service struct {
	store      *catalog.Store
	types      *vehicle.TypeRegistry
	sellerRepo seller.Repository
	uploader   ImageUploader
	logger     *zap.Logger
	newID      func() string
}

func NewService(store *catalog.Store, types *vehicle.TypeRegistry, sellerRepo seller.Repository, uploader ImageUploader, logger *zap.Logger) *Service {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return &Service{
		store:      store,
		types:      types,
		sellerRepo: sellerRepo,
		uploader:   uploader,
		logger:     logger,
		newID: func() string {
			return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
		},
	}
}

// SaveVehicle normalizes the form, merges it into the working collection
// (prepended when new, full-record replace when editing) and syncs the whole
// set. On sync failure the in-memory collection stays at its last synced
// state and the error propagates. sessionSeller names the vehicle's seller
// when the form left it blank.
func (s *Service) SaveVehicle(ctx context.Context, form vehicle.Form, sessionSeller string) (vehicle.Vehicle, error) {
	v := s.normalizeVehicle(form, sessionSeller)

	working := s.store.Vehicles()
	if form.ID == "" {
		v.ID = s.newID()
		v.CreatedAt = time.Now().UTC()
		working = append([]vehicle.Vehicle{v}, working...)
	} else {
		idx := -1
		for i := range working {
			if working[i].ID == form.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return vehicle.Vehicle{}, fmt.Errorf("vehicle %s: %w", form.ID, xerrors.ErrNotFound)
		}
		v.ID = form.ID
		v.CreatedAt = working[idx].CreatedAt
		working[idx] = v
	}

	if err := s.store.SyncAll(ctx, working); err != nil {
		return vehicle.Vehicle{}, err
	}

	s.logger.Info("vehicle saved",
		zap.String("vehicle_id", v.ID),
		zap.String("name", v.Name),
		zap.Bool("created", form.ID == ""),
	)
	return v, nil
}

// RemoveVehicle drops one vehicle and syncs the remaining set. A failed sync
// leaves the collection intact, since the store only commits on success.
func (s *Service) RemoveVehicle(ctx context.Context, id string) error {
	current := s.store.Vehicles()
	working := make([]vehicle.Vehicle, 0, len(current))
	found := false
	for _, v := range current {
		if v.ID == id {
			found = true
			continue
		}
		working = append(working, v)
	}
	if !found {
		return fmt.Errorf("vehicle %s: %w", id, xerrors.ErrNotFound)
	}

	if err := s.store.SyncAll(ctx, working); err != nil {
		return err
	}

	s.logger.Info("vehicle removed", zap.String("vehicle_id", id))
	return nil
}

// RegisterType adds a new category label to the open set. Re-registering a
// known label is a no-op.
func (s *Service) RegisterType(name string) (string, error) {
	label := strings.ToUpper(strings.TrimSpace(name))
	if label == "" {
		return "", xerrors.ErrInvalidInput
	}
	if !s.types.Contains(label) {
		s.types.Register(label)
		s.logger.Info("category registered", zap.String("type", label))
	}
	return label, nil
}

// KnownTypes lists every category label: the seeded defaults, registered
// ones, and anything already present in the collection.
func (s *Service) KnownTypes() []string {
	for _, v := range s.store.Vehicles() {
		s.types.Register(v.Type)
	}
	return s.types.Known()
}

// SaveSeller upserts one seller by id. The password only travels when the
// form supplied one; a brand-new seller without a password is a rejected
// write. IsAdmin is kept consistent with the ADMINISTRADOR role.
func (s *Service) SaveSeller(ctx context.Context, form seller.Form) (seller.Seller, error) {
	if form.ID == "" && form.Password == "" {
		return seller.Seller{}, xerrors.ErrMissingPassword
	}

	role := strings.TrimSpace(form.Role)
	if role == "" && form.IsAdmin {
		role = seller.RoleAdmin
	}

	imageURL := form.ImageURL
	if imageURL == "" {
		imageURL = seller.DefaultImageURL
	}

	sl := seller.Seller{
		ID:        form.ID,
		Name:      form.Name,
		Role:      role,
		ImageURL:  imageURL,
		Username:  form.Username,
		Password:  form.Password,
		Instagram: form.Instagram,
		Whatsapp:  form.Whatsapp,
		Email:     form.Email,
		Bio:       form.Bio,
		Active:    form.Active,
		IsAdmin:   role == seller.RoleAdmin,
	}
	if sl.ID == "" {
		sl.ID = s.newID()
	}

	keepPassword := form.ID != "" && form.Password == ""
	if err := s.sellerRepo.Upsert(ctx, sl, keepPassword); err != nil {
		s.logger.Error("seller upsert failed", zap.Error(err), zap.String("seller_id", sl.ID))
		return seller.Seller{}, err
	}

	if err := s.store.ReloadSellers(ctx); err != nil {
		return seller.Seller{}, err
	}

	s.logger.Info("seller saved", zap.String("seller_id", sl.ID), zap.String("name", sl.Name))
	return sl, nil
}

// DeleteSeller removes one seller by id and refreshes the collection.
func (s *Service) DeleteSeller(ctx context.Context, id string) error {
	if err := s.sellerRepo.Delete(ctx, id); err != nil {
		s.logger.Error("seller delete failed", zap.Error(err), zap.String("seller_id", id))
		return err
	}
	if err := s.store.ReloadSellers(ctx); err != nil {
		return err
	}

	s.logger.Info("seller deleted", zap.String("seller_id", id))
	return nil
}

// Image carries one uploaded file.
type Image struct {
	Filename string
	Data     []byte
}

// UploadImages stores gallery files one at a time, in order. On a mid-batch
// failure the URLs already stored are returned alongside the error, so the
// pending form keeps what succeeded; nothing touches the vehicle record
// until the subsequent save.
func (s *Service) UploadImages(ctx context.Context, images []Image) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.uploader.Upload(ctx, img.Filename, img.Data)
		if err != nil {
			return urls, fmt.Errorf("failed to upload %s: %w", img.Filename, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// normalizeVehicle produces the canonical record from a form submission:
// free text upper-cased, blank technical fields replaced with the N/A
// sentinel, price and mileage re-derived from the typed strings. Running it
// over an already-canonical record yields the record unchanged.
func (s *Service) normalizeVehicle(form vehicle.Form, sessionSeller string) vehicle.Vehicle {
	typeLabel := form.Type
	if form.NewType != "" {
		typeLabel = form.NewType
	}
	typeLabel = s.types.Register(strings.ToUpper(strings.TrimSpace(typeLabel)))

	priceNumeric := money.ParseCurrency(form.Price)
	kmNumeric := money.ParseMileage(form.KM)

	sellerName := form.SellerName
	if sellerName == "" {
		sellerName = sessionSeller
	}

	image := form.Image
	if image == "" {
		image = DefaultVehicleImage
	}

	gallery := form.Gallery
	if gallery == nil {
		gallery = []string{}
	}

	return vehicle.Vehicle{
		Name:         strings.ToUpper(form.Name),
		Brand:        strings.ToUpper(form.Brand),
		Type:         typeLabel,
		Price:        money.FormatCurrency(priceNumeric),
		PriceNumeric: priceNumeric,
		Year:         form.Year,
		KM:           money.FormatMileage(kmNumeric),
		KMNumeric:    kmNumeric,
		Color:        strings.ToUpper(form.Color),
		Image:        image,
		Featured:     form.Featured,
		SellerName:   sellerName,
		HidePrice:    form.HidePrice,
		Description:  strings.ToUpper(form.Description),
		Engine:       upperOrNA(form.Engine),
		Transmission: upperOrNA(form.Transmission),
		Seats:        upperOrNA(form.Seats),
		Tires:        upperOrNA(form.Tires),
		ManualProp:   upperOrNA(form.ManualProp),
		SpareKey:     upperOrNA(form.SpareKey),
		Steering:     upperOrNA(form.Steering),
		Review:       upperOrNA(form.Review),
		Gallery:      gallery,
	}
}

func upperOrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return vehicle.NotApplicable
	}
	return strings.ToUpper(s)
}
