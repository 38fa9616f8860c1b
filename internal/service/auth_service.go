package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"apjatelpmo/internal/model"
	"apjatelpmo/internal/sheet"
	"apjatelpmo/pkg/util"
)

var ErrInvalidCredentials = errors.New("invalid vendor id or password")

// DemoPassword unlocks the fallback accounts when the sheet backend is
// unreachable and demo data is enabled.
const DemoPassword = "apjatel-demo"

type AuthService struct {
	sheets        *sheet.Client
	jwtSecret     string
	adminVendorID string
	allowDemo     bool
	demoHash      string
	logger        *zap.Logger
}

func NewAuthService(sheets *sheet.Client, jwtSecret, adminVendorID string, allowDemo bool, logger *zap.Logger) *AuthService {
	s := &AuthService{
		sheets:        sheets,
		jwtSecret:     jwtSecret,
		adminVendorID: adminVendorID,
		allowDemo:     allowDemo,
		logger:        logger,
	}
	if allowDemo {
		hash, err := util.HashPassword(DemoPassword)
		if err != nil {
			logger.Error("Failed to hash demo password, demo login disabled", zap.Error(err))
			s.allowDemo = false
		} else {
			s.demoHash = hash
		}
	}
	return s
}

// Login verifies credentials against the sheet user table and returns a JWT
// plus the vendor profile. When the sheet backend is unreachable and demo
// data is enabled, the fallback accounts accept the demo password.
func (s *AuthService) Login(ctx context.Context, id, password string) (string, *model.Vendor, error) {
	vendor, err := s.sheets.Login(ctx, id, password)
	switch {
	case err == nil:
		// fall through to token issue
	case errors.Is(err, sheet.ErrLoginRejected):
		return "", nil, ErrInvalidCredentials
	case errors.Is(err, sheet.ErrNetwork) && s.allowDemo:
		vendor = s.demoLogin(id, password)
		if vendor == nil {
			return "", nil, ErrInvalidCredentials
		}
		s.logger.Warn("Sheet backend unreachable, demo login used",
			zap.String("vendor_id", id),
		)
	default:
		return "", nil, err
	}

	isAdmin := vendor.ID == s.adminVendorID
	token, err := util.GenerateJWT(vendor.ID, vendor.Name, isAdmin, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("Vendor logged in",
		zap.String("vendor_id", vendor.ID),
		zap.Bool("is_admin", isAdmin),
	)
	return token, vendor, nil
}

func (s *AuthService) demoLogin(id, password string) *model.Vendor {
	if !util.CheckPassword(password, s.demoHash) {
		return nil
	}
	for _, v := range sheet.DemoVendors() {
		if v.ID == id {
			return &v
		}
	}
	return nil
}
