package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/guichet-labs/guichet/internal/session"
)

// Session keys.
const (
	TokenKey      = "access_token"
	profileKey    = "profile"
	profileTagKey = "profile_token"
)

// ProfileErrorToast is shown when the profile lookup fails.
const ProfileErrorToast = "Erreur de recuperation donnees utilisateur"

// ErrSupersededLogin is returned by Login when a newer login or a logout
// of the same visitor completed while the profile lookup ran. The session
// is left untouched so the newer outcome stands.
var ErrSupersededLogin = errors.New("login superseded")

// State is the resolved authentication state of a request.
type State struct {
	Token   string
	User    *Claims
	Profile Profile
}

// LoggedIn reports whether a user is authenticated.
func (s State) LoggedIn() bool { return s.User != nil }

// Provider manages the token, claims and profile held in the session.
type Provider struct {
	sessions *session.Store
	decoder  *Decoder
	profiles ProfileFetcher
	logger   *slog.Logger

	mu     sync.Mutex
	logins map[string]*loginSeq
}

// loginSeq orders the logins of one visitor while lookups are in flight.
type loginSeq struct {
	gen      uint64
	inflight int
}

// NewProvider returns a Provider. A nil fetcher skips profile lookups.
func NewProvider(sessions *session.Store, decoder *Decoder, profiles ProfileFetcher, logger *slog.Logger) *Provider {
	if decoder == nil {
		decoder = NewDecoder("")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Provider{
		sessions: sessions,
		decoder:  decoder,
		profiles: profiles,
		logger:   logger,
		logins:   make(map[string]*loginSeq),
	}
}

// Resolve reads the authentication state from sess. A stored token that
// no longer decodes clears the session: the visitor ends up logged out,
// never half decoded.
func (p *Provider) Resolve(sess *session.Session) State {
	token := sess.String(TokenKey)
	if token == "" {
		return State{}
	}

	claims, err := p.decoder.Decode(token)
	if err != nil {
		p.logger.Debug("discarding undecodable session token", "error", err)
		p.clear(sess)
		return State{}
	}

	return State{
		Token:   token,
		User:    claims,
		Profile: p.storedProfile(sess, token),
	}
}

// Login stores token and fetches the user's profile. A malformed token
// clears the session and returns ErrMalformedToken. A failed profile
// lookup is not an error: it queues a toast and leaves the profile empty.
// Logins of one visitor apply in the order they started; an older one
// finishing last returns ErrSupersededLogin without changing sess.
func (p *Provider) Login(ctx context.Context, sess *session.Session, token string) (State, error) {
	visitor := sess.ID()
	claims, err := p.decoder.Decode(token)
	if err != nil {
		p.supersede(visitor)
		p.clear(sess)
		return State{}, err
	}

	state := State{Token: token, User: claims}
	if p.profiles == nil || claims.Email == "" {
		p.supersede(visitor)
		p.setToken(sess, token)
		return state, nil
	}

	gen := p.beginLogin(visitor)
	profile, err := p.profiles.FetchProfile(ctx, claims.Email)
	if !p.endLogin(visitor, gen) {
		p.logger.Debug("dropping superseded login", "email", claims.Email)
		return State{}, ErrSupersededLogin
	}

	p.setToken(sess, token)
	if err != nil {
		p.logger.Warn("profile lookup failed", "email", claims.Email, "error", err)
		sess.AddToast(ProfileErrorToast)
		return state, nil
	}

	p.storeProfile(sess, token, profile)
	state.Profile = profile
	return state, nil
}

func (p *Provider) setToken(sess *session.Session, token string) {
	sess.Set(TokenKey, token)
	sess.Delete(profileKey)
	sess.Delete(profileTagKey)
}

func (p *Provider) beginLogin(visitor string) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	seq, ok := p.logins[visitor]
	if !ok {
		seq = &loginSeq{}
		p.logins[visitor] = seq
	}
	seq.gen++
	seq.inflight++
	return seq.gen
}

// endLogin reports whether gen is still the visitor's latest login.
func (p *Provider) endLogin(visitor string, gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	seq, ok := p.logins[visitor]
	if !ok {
		return true
	}
	seq.inflight--
	if seq.inflight <= 0 {
		delete(p.logins, visitor)
	}
	return seq.gen == gen
}

// supersede invalidates the visitor's logins still in flight.
func (p *Provider) supersede(visitor string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if seq, ok := p.logins[visitor]; ok {
		seq.gen++
	}
}

// Logout clears the token, the claims and the profile, and supersedes
// logins of the visitor still waiting on their profile.
func (p *Provider) Logout(sess *session.Session) {
	p.supersede(sess.ID())
	p.clear(sess)
}

func (p *Provider) clear(sess *session.Session) {
	sess.Delete(TokenKey)
	sess.Delete(profileKey)
	sess.Delete(profileTagKey)
}

func (p *Provider) storeProfile(sess *session.Session, token string, profile Profile) {
	raw, err := json.Marshal(profile)
	if err != nil {
		p.logger.Warn("profile not storable", "error", err)
		return
	}
	sess.Set(profileKey, string(raw))
	sess.Set(profileTagKey, tokenTag(token))
}

// storedProfile returns the profile saved for token. Profiles saved for
// another token are ignored.
func (p *Provider) storedProfile(sess *session.Session, token string) Profile {
	if sess.String(profileTagKey) != tokenTag(token) {
		return nil
	}
	raw := sess.String(profileKey)
	if raw == "" {
		return nil
	}
	var profile Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil
	}
	return profile
}

func tokenTag(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

type contextKey struct{}

// WithState returns a copy of ctx carrying s.
func WithState(ctx context.Context, s State) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the authentication state carried by ctx.
func FromContext(ctx context.Context) State {
	s, _ := ctx.Value(contextKey{}).(State)
	return s
}

// Middleware resolves the authentication state into the request context.
// It must run after session.Store.Middleware.
func (p *Provider) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := p.sessions.Get(r)
		state := p.Resolve(sess)
		if sess.Dirty() {
			if err := sess.Save(r, w); err != nil {
				p.logger.Error("failed to save session", "error", err)
			}
		}
		next.ServeHTTP(w, r.WithContext(WithState(r.Context(), state)))
	})
}

// IsMalformed reports whether err came from an undecodable token.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedToken)
}
