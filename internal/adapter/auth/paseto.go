package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/shopx/internal/adapter/config"
	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/port"
)

const payloadClaim = "payload"

type PasetoToken struct {
	parser paseto.Parser
	key    paseto.V4SymmetricKey
	ttl    time.Duration
}

func New(conf *config.Auth) (*PasetoToken, error) {
	key := paseto.NewV4SymmetricKey()
	if conf.KeyHex != "" {
		k, err := paseto.V4SymmetricKeyFromHex(conf.KeyHex)
		if err != nil {
			return nil, fmt.Errorf("invalid paseto key: %w", err)
		}
		key = k
	}

	ttl := conf.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &PasetoToken{
		parser: paseto.NewParser(),
		key:    key,
		ttl:    ttl,
	}, nil
}

// KeyHex exports the symmetric key so sibling services can mint tokens.
func (p *PasetoToken) KeyHex() string {
	return p.key.ExportHex()
}

func (p *PasetoToken) CreateToken(payload *port.TokenPayload) (string, error) {
	token := paseto.NewToken()
	now := time.Now()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(p.ttl))

	err := token.Set(payloadClaim, payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get(payloadClaim, &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
