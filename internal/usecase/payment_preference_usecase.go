package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"app_oficios/internal/domain/entities"
	"app_oficios/internal/usecase/interfaces"
)

var (
	ErrInvalidPreferenceTitle    = errors.New("preference title is required")
	ErrInvalidPreferenceAmount   = errors.New("preference amount must be greater than zero")
	ErrInvalidPreferenceQuantity = errors.New("preference quantity must be at least one")
	ErrJobNotFinished            = errors.New("job is not finished")
	ErrJobAlreadyInvoiced        = errors.New("job already has an invoice")
)

// PreferenceCommand carries the checkout line the caller wants to collect.
// Amount mirrors the finished job's final cost.
type PreferenceCommand struct {
	JobID       string
	Title       string
	Description string
	Amount      float64
	Quantity    int
}

// IPaymentPreferenceUseCase issues one-shot payment preferences for finished
// jobs. Preferences are deliberately NOT deduplicated: each call creates a
// fresh one, since an abandoned redirect leaves the previous preference in an
// indeterminate state only the gateway can resolve.

type IPaymentPreferenceUseCase interface {
	CreatePreferenceForJob(ctx context.Context, cmd PreferenceCommand) (entities.PaymentPreference, error)
	GatewayConfig() entities.GatewayConfig
}

type PaymentPreferenceUseCase struct {
	jobRepo   interfaces.IJobRepository
	gateway   interfaces.IPaymentGateway
	opTimeout time.Duration
}

var _ IPaymentPreferenceUseCase = (*PaymentPreferenceUseCase)(nil)

func NewPaymentPreferenceUseCase(jobRepo interfaces.IJobRepository, gateway interfaces.IPaymentGateway) *PaymentPreferenceUseCase {
	return &PaymentPreferenceUseCase{
		jobRepo:   jobRepo,
		gateway:   gateway,
		opTimeout: opTimeoutFromEnv(),
	}
}

// CreatePreferenceForJob validates the command before touching storage or the
// gateway, then requires the job to be FINALIZADO and not yet invoiced.
func (u *PaymentPreferenceUseCase) CreatePreferenceForJob(ctx context.Context, cmd PreferenceCommand) (entities.PaymentPreference, error) {
	jobID := strings.TrimSpace(cmd.JobID)
	title := strings.TrimSpace(cmd.Title)
	if jobID == "" {
		return entities.PaymentPreference{}, ErrInvalidJobID
	}
	if title == "" {
		return entities.PaymentPreference{}, ErrInvalidPreferenceTitle
	}
	if cmd.Amount <= 0 {
		return entities.PaymentPreference{}, ErrInvalidPreferenceAmount
	}
	quantity := cmd.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return entities.PaymentPreference{}, ErrInvalidPreferenceQuantity
	}
	if u.gateway == nil {
		return entities.PaymentPreference{}, errors.New("payment gateway not configured")
	}

	ctx, cancel := withOpTimeout(ctx, u.opTimeout)
	defer cancel()

	j, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.PaymentPreference{}, mapTimeout(err)
	}
	if j.ID == "" {
		return entities.PaymentPreference{}, ErrJobNotFound
	}
	if j.Status != entities.JobStatusFinalizado {
		return entities.PaymentPreference{}, ErrJobNotFinished
	}
	if j.InvoiceID != "" {
		return entities.PaymentPreference{}, ErrJobAlreadyInvoiced
	}

	pref, err := u.gateway.CreatePreference(ctx, entities.PreferenceRequest{
		JobID:       jobID,
		Title:       title,
		Description: strings.TrimSpace(cmd.Description),
		Amount:      cmd.Amount,
		Quantity:    quantity,
	})
	if err != nil {
		log.Printf("[payment][usecase] preference creation failed job_id=%s err=%v", jobID, err)
		return entities.PaymentPreference{}, mapTimeout(err)
	}
	log.Printf("[payment][usecase] preference created job_id=%s preference_id=%s", jobID, pref.PreferenceID)
	return pref, nil
}

func (u *PaymentPreferenceUseCase) GatewayConfig() entities.GatewayConfig {
	if u.gateway == nil {
		return entities.GatewayConfig{}
	}
	return u.gateway.Config()
}
