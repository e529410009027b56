package service

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"diet-coach-be/internal/config"
	"diet-coach-be/internal/dto"
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/pkg/crypto"
	"diet-coach-be/internal/repository/unitofwork"
)

const calendarScope = "https://www.googleapis.com/auth/calendar.events"

type IGoogleAuthService interface {
	GetAuthURL(ctx context.Context, userId uuid.UUID) (*dto.GoogleAuthURLResponse, error)
	HandleCallback(ctx context.Context, state, code string) error
	Status(ctx context.Context, userId uuid.UUID) (*dto.GoogleAuthStatusResponse, error)
	Disconnect(ctx context.Context, userId uuid.UUID) error

	// TokenSource returns a per-user source backed by the stored grant, or
	// ErrCalendarNotConnected when the user never linked their account.
	TokenSource(ctx context.Context, userId uuid.UUID) (oauth2.TokenSource, error)
}

type googleAuthService struct {
	uowFactory unitofwork.RepositoryFactory
	codec      *crypto.FieldCodec
	oauth      *oauth2.Config
	// pending OAuth states, keyed by the state nonce
	states *gocache.Cache
}

func NewGoogleAuthService(uowFactory unitofwork.RepositoryFactory, codec *crypto.FieldCodec, cfg config.GoogleConfig) IGoogleAuthService {
	return &googleAuthService{
		uowFactory: uowFactory,
		codec:      codec,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{calendarScope},
			Endpoint:     google.Endpoint,
		},
		states: gocache.New(10*time.Minute, 15*time.Minute),
	}
}

func (s *googleAuthService) GetAuthURL(ctx context.Context, userId uuid.UUID) (*dto.GoogleAuthURLResponse, error) {
	state := uuid.New().String()
	s.states.Set(state, userId, gocache.DefaultExpiration)

	url := s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	return &dto.GoogleAuthURLResponse{URL: url}, nil
}

func (s *googleAuthService) HandleCallback(ctx context.Context, state, code string) error {
	v, ok := s.states.Get(state)
	if !ok {
		return ErrInvalidOauthState
	}
	s.states.Delete(state)
	userId := v.(uuid.UUID)

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	auth := &entity.GoogleAuth{
		Id:           uuid.New(),
		UserId:       userId,
		AccessToken:  s.codec.Encrypt(token.AccessToken),
		RefreshToken: s.codec.Encrypt(token.RefreshToken),
		TokenExpiry:  token.Expiry,
	}
	return uow.GoogleAuthRepository().Upsert(ctx, auth)
}

func (s *googleAuthService) Status(ctx context.Context, userId uuid.UUID) (*dto.GoogleAuthStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	auth, err := uow.GoogleAuthRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	return &dto.GoogleAuthStatusResponse{Connected: auth != nil}, nil
}

func (s *googleAuthService) Disconnect(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.GoogleAuthRepository().DeleteByUserId(ctx, userId)
}

func (s *googleAuthService) TokenSource(ctx context.Context, userId uuid.UUID) (oauth2.TokenSource, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	auth, err := uow.GoogleAuthRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if auth == nil {
		return nil, ErrCalendarNotConnected
	}

	token := &oauth2.Token{
		AccessToken:  s.codec.Decrypt(auth.AccessToken),
		RefreshToken: s.codec.Decrypt(auth.RefreshToken),
		Expiry:       auth.TokenExpiry,
	}
	return s.oauth.TokenSource(ctx, token), nil
}
