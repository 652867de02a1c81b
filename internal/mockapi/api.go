package mockapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yadvendra249/olio-cab-connect/internal/auth"
	"github.com/yadvendra249/olio-cab-connect/internal/booking/domain"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/models"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/util"
)

// Client is the canned stand-in for the real backend. Every call sleeps for a
// fixed latency and answers from fixtures; nothing leaves the process. The
// admin account is recognized by email, the OTP is a single configured code.

var (
	ErrInvalidOTP = errors.New("invalid OTP")
)

type Client struct {
	latency     time.Duration
	listLatency time.Duration
	otpCode     string
	adminEmail  string
	jwtSecret   string
	tokenTTL    time.Duration
	logger      *util.Logger
}

func New(cfg *models.Config, logger *util.Logger) *Client {
	return &Client{
		latency:     time.Duration(cfg.API.LatencyMS) * time.Millisecond,
		listLatency: time.Duration(cfg.API.ListLatencyMS) * time.Millisecond,
		otpCode:     cfg.API.OTPCode,
		adminEmail:  cfg.API.AdminEmail,
		jwtSecret:   cfg.Auth.JWTSecret,
		tokenTTL:    time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute,
		logger:      logger,
	}
}

type AuthResponse struct {
	User  *auth.User `json:"user"`
	Token string     `json:"token"`
}

type OTPResponse struct {
	Success bool   `json:"success"`
	OTP     string `json:"otp"` // in a real backend the OTP goes out via SMS
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type BookingResponse struct {
	domain.Booking
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if err := c.sleep(ctx, c.latency); err != nil {
		return nil, err
	}

	isAdmin := email == c.adminEmail
	user := &auth.User{
		ID:     "1",
		Name:   "John Doe",
		Email:  email,
		Mobile: "1234567890",
		Role:   auth.RoleUser,
	}
	if isAdmin {
		user.Name = "Admin User"
		user.Role = auth.RoleAdmin
	}

	return c.respond("Login", user)
}

func (c *Client) SendOTP(ctx context.Context, mobile string) (*OTPResponse, error) {
	if err := c.sleep(ctx, c.latency); err != nil {
		return nil, err
	}
	c.logger.Info("MockAPI.SendOTP", fmt.Sprintf("OTP dispatched [mobile=%s]", mobile))
	return &OTPResponse{Success: true, OTP: c.otpCode}, nil
}

func (c *Client) VerifyOTP(ctx context.Context, mobile, otp string) (*AuthResponse, error) {
	if err := c.sleep(ctx, c.latency); err != nil {
		return nil, err
	}
	if otp != c.otpCode {
		return nil, ErrInvalidOTP
	}

	user := &auth.User{
		ID:     "2",
		Name:   "Mobile User",
		Email:  fmt.Sprintf("%s@temp.com", mobile),
		Mobile: mobile,
		Role:   auth.RoleUser,
	}
	return c.respond("VerifyOTP", user)
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	if err := c.sleep(ctx, c.latency); err != nil {
		return nil, err
	}

	user := &auth.User{
		ID:     fmt.Sprintf("%d", time.Now().UnixMilli()),
		Name:   req.Name,
		Email:  req.Email,
		Mobile: req.Mobile,
		Role:   auth.RoleUser,
	}
	return c.respond("Signup", user)
}

func (c *Client) SendPasswordResetOTP(ctx context.Context, email string) (*OTPResponse, error) {
	if err := c.sleep(ctx, c.latency); err != nil {
		return nil, err
	}
	return &OTPResponse{Success: true, OTP: c.otpCode}, nil
}

func (c *Client) VerifyPasswordResetOTP(ctx context.Context, email, otp string) error {
	if err := c.sleep(ctx, c.latency); err != nil {
		return err
	}
	if otp != c.otpCode {
		return ErrInvalidOTP
	}
	return nil
}

func (c *Client) ResetPassword(ctx context.Context, email, newPassword string) error {
	return c.sleep(ctx, c.latency)
}

// CreateBooking echoes the submitted booking back the way the real backend
// would: same fields, pending status, server-side timestamp.
func (c *Client) CreateBooking(ctx context.Context, input domain.CreateBookingInput) (*BookingResponse, error) {
	if err := c.sleep(ctx, c.latency); err != nil {
		return nil, err
	}

	now := time.Now()
	return &BookingResponse{Booking: domain.Booking{
		Number:         fmt.Sprintf("BK%d", now.UnixMilli()),
		Type:           input.Type,
		Category:       input.Category,
		PickupLocation: input.PickupLocation,
		DropLocation:   input.DropLocation,
		Date:           input.Date,
		Status:         domain.StatusPending,
		VehicleType:    input.VehicleType,
		Passengers:     input.Passengers,
		Luggage:        input.Luggage,
		Terminal:       input.Terminal,
		CustomerName:   input.CustomerName,
		CustomerMobile: input.CustomerMobile,
		FareEstimate:   input.FareEstimate,
		CreatedAt:      now,
	}}, nil
}

func (c *Client) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	if err := c.sleep(ctx, c.listLatency); err != nil {
		return nil, err
	}
	return []domain.Booking{}, nil
}

func (c *Client) respond(instance string, user *auth.User) (*AuthResponse, error) {
	token, err := auth.GenerateToken(user, c.jwtSecret, c.tokenTTL)
	if err != nil {
		c.logger.Error("MockAPI."+instance, err)
		return nil, err
	}
	c.logger.OK("MockAPI."+instance, fmt.Sprintf("session issued [user_id=%s, role=%s]", user.ID, user.Role))
	return &AuthResponse{User: user, Token: token}, nil
}

func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
