package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storemax-web/internal/application/auth"
	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/domain"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
	"github.com/jhoicas/storemax-web/internal/infrastructure/memory"
)

// ── Fakes ────────────────────────────────────────────────────────────────────

type gwErr struct {
	status int
	msg    string
}

func (e *gwErr) Error() string         { return "gateway" }
func (e *gwErr) HTTPStatus() int       { return e.status }
func (e *gwErr) ServerMessage() string { return e.msg }

type fakeGateway struct {
	calls    int
	username string
	password string
	result   *dto.LoginResult
	err      error
}

func (f *fakeGateway) Login(_ context.Context, username, password string) (*dto.LoginResult, error) {
	f.calls++
	f.username, f.password = username, password
	return f.result, f.err
}

type countingSessions struct {
	*memory.SessionStore
	writes int
}

func (c *countingSessions) Write(ctx context.Context, id string, patch entity.Session) error {
	c.writes++
	return c.SessionStore.Write(ctx, id, patch)
}

func newUseCase(gw *fakeGateway) (*auth.UseCase, *countingSessions) {
	store := &countingSessions{SessionStore: memory.NewSessionStore()}
	return auth.NewUseCase(gw, store, 2), store
}

func okResult(role string) *dto.LoginResult {
	return &dto.LoginResult{AccessToken: "A", RefreshToken: "R", Role: role, FullName: "Ana Pérez", Username: "ana"}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_ExitoEscribeSesionCompletaYRedirige(t *testing.T) {
	homes := map[string]string{
		"Admin":             "/admin",
		"Manager":           "/manager",
		"Cashier":           "/cashier",
		"Inventory Manager": "/inventory",
	}
	for role, home := range homes {
		t.Run(role, func(t *testing.T) {
			gw := &fakeGateway{result: okResult(role)}
			uc, store := newUseCase(gw)

			resp, err := uc.Login(context.Background(), "sid", dto.LoginRequest{Username: "  ana ", Password: " pw "})
			require.NoError(t, err)
			assert.Equal(t, string(auth.StateSuccess), resp.State)
			assert.Equal(t, home, resp.Redirect)
			assert.Equal(t, "ana", gw.username)
			assert.Equal(t, "pw", gw.password)
			assert.Equal(t, 1, store.writes)

			s, err := store.Read(context.Background(), "sid")
			require.NoError(t, err)
			assert.Equal(t, "A", s.AccessToken)
			assert.Equal(t, "R", s.RefreshToken)
			assert.Equal(t, entity.Role(role), s.Role)
			assert.Equal(t, "Ana Pérez", s.DisplayName)
			assert.Equal(t, "ana", s.Username)
		})
	}
}

func TestLogin_GuardasLocalesSinLlamarAlBackend(t *testing.T) {
	tests := []struct {
		name string
		in   dto.LoginRequest
		msg  string
	}{
		{"usuario vacío", dto.LoginRequest{Username: "   ", Password: "secret"}, "Username is required"},
		{"contraseña vacía", dto.LoginRequest{Username: "ana", Password: "  "}, "Password is required"},
		{"contraseña corta", dto.LoginRequest{Username: "ana", Password: "x"}, "Password must be at least 2 characters long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{result: okResult("Admin")}
			uc, store := newUseCase(gw)

			_, err := uc.Login(context.Background(), "sid", tt.in)
			var le *auth.LoginError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, auth.FailureValidation, le.Failure)
			assert.Equal(t, tt.msg, le.Msg)
			assert.Zero(t, gw.calls)
			assert.Zero(t, store.writes)
		})
	}
}

func TestLogin_RolInvalidoNoTocaLaSesion(t *testing.T) {
	gw := &fakeGateway{result: okResult("Superuser")}
	uc, store := newUseCase(gw)

	_, err := uc.Login(context.Background(), "sid", dto.LoginRequest{Username: "ana", Password: "pw"})
	var le *auth.LoginError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "Invalid role received from server: Superuser", le.Msg)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	assert.Zero(t, store.writes)
	s, _ := store.Read(context.Background(), "sid")
	assert.True(t, s.IsZero())
}

func TestLogin_RolDistintoAlSeleccionado(t *testing.T) {
	gw := &fakeGateway{result: okResult("Cashier")}
	uc, store := newUseCase(gw)
	require.NoError(t, store.SessionStore.Write(context.Background(), "sid", entity.Session{PendingRoleSelection: entity.RoleAdmin}))

	_, err := uc.Login(context.Background(), "sid", dto.LoginRequest{Username: "ana", Password: "pw"})
	var le *auth.LoginError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, auth.FailureRole, le.Failure)
	assert.Equal(t, "Please enter Admin credentials. You logged in as Cashier", le.Msg)
	assert.ErrorIs(t, err, domain.ErrRoleMismatch)

	s, _ := store.Read(context.Background(), "sid")
	assert.Equal(t, entity.Session{PendingRoleSelection: entity.RoleAdmin}, s)
}

func TestLogin_RolSeleccionadoCoincide(t *testing.T) {
	gw := &fakeGateway{result: okResult("Cashier")}
	uc, store := newUseCase(gw)
	require.NoError(t, store.SessionStore.Write(context.Background(), "sid", entity.Session{PendingRoleSelection: entity.RoleCashier}))

	resp, err := uc.Login(context.Background(), "sid", dto.LoginRequest{Username: "ana", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "/cashier", resp.Redirect)
}

func TestLogin_NoGuardaUnTileQueNadieEligio(t *testing.T) {
	gw := &fakeGateway{result: okResult("Admin")}
	uc, store := newUseCase(gw)
	ctx := context.Background()

	_, err := uc.Login(ctx, "sid", dto.LoginRequest{Username: "root", Password: "pw"})
	require.NoError(t, err)
	s, _ := store.Read(ctx, "sid")
	assert.Empty(t, s.PendingRoleSelection)

	// Segundo login en la misma sesión, otra vez sin tile.
	gw.result = okResult("Cashier")
	resp, err := uc.Login(ctx, "sid", dto.LoginRequest{Username: "ana", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "/cashier", resp.Redirect)
	s, _ = store.Read(ctx, "sid")
	assert.Equal(t, entity.RoleCashier, s.Role)
}

func TestLogin_MensajesDeFallo(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		failure auth.Failure
		msg     string
	}{
		{"sin respuesta", &gwErr{status: 0}, auth.FailureNetwork, "Network error. Please check your connection."},
		{"401", &gwErr{status: 401, msg: "No active account"}, auth.FailureCredentials, "Invalid username or password"},
		{"400 con mensaje", &gwErr{status: 400, msg: "Username and password required"}, auth.FailureServer, "Username and password required"},
		{"400 sin mensaje", &gwErr{status: 400}, auth.FailureServer, "Invalid request"},
		{"500", &gwErr{status: 500}, auth.FailureServer, "Server error: 500"},
		{"desconocido", errors.New("boom"), auth.FailureServer, "Something went wrong. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{err: tt.err}
			uc, store := newUseCase(gw)

			_, err := uc.Login(context.Background(), "sid", dto.LoginRequest{Username: "ana", Password: "pw"})
			var le *auth.LoginError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.failure, le.Failure)
			assert.Equal(t, tt.msg, le.Msg)
			assert.Equal(t, 1, gw.calls)
			assert.Zero(t, store.writes)
		})
	}
}

// ── Selección de rol y logout ────────────────────────────────────────────────

func TestRotate_MueveLaSesionYLimpiaLaAnterior(t *testing.T) {
	uc, store := newUseCase(&fakeGateway{result: okResult("Manager")})
	ctx := context.Background()
	_, err := uc.Login(ctx, "old", dto.LoginRequest{Username: "ana", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, uc.Rotate(ctx, "old", "new"))

	prev, _ := store.Read(ctx, "old")
	assert.True(t, prev.IsZero())
	cur, _ := store.Read(ctx, "new")
	assert.Equal(t, entity.RoleManager, cur.Role)
	assert.Equal(t, "A", cur.AccessToken)
}

func TestSelectRole(t *testing.T) {
	uc, store := newUseCase(&fakeGateway{})

	resp, err := uc.SelectRole(context.Background(), "sid", dto.SelectRoleRequest{Role: "Inventory Manager"})
	require.NoError(t, err)
	assert.Equal(t, auth.LoginPath, resp.Redirect)
	s, _ := store.Read(context.Background(), "sid")
	assert.Equal(t, entity.RoleInventoryManager, s.PendingRoleSelection)

	_, err = uc.SelectRole(context.Background(), "sid", dto.SelectRoleRequest{Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	assert.Equal(t, 1, store.writes)
}

func TestLogout_LimpiaLosSeisCampos(t *testing.T) {
	uc, store := newUseCase(&fakeGateway{})
	full := entity.Session{
		AccessToken: "A", RefreshToken: "R", Role: entity.RoleAdmin,
		PendingRoleSelection: entity.RoleAdmin, DisplayName: "Ana", Username: "ana",
	}
	require.NoError(t, store.Write(context.Background(), "sid", full))

	require.NoError(t, uc.Logout(context.Background(), "sid"))
	s, err := store.Read(context.Background(), "sid")
	require.NoError(t, err)
	assert.True(t, s.IsZero())
}

// ── Vistas ───────────────────────────────────────────────────────────────────

func TestLanding(t *testing.T) {
	uc, _ := newUseCase(&fakeGateway{})

	anon := uc.Landing(entity.Session{PendingRoleSelection: entity.RoleManager})
	require.Len(t, anon.Roles, 4)
	assert.False(t, anon.Authenticated)
	assert.True(t, anon.Roles[1].Selected)
	assert.Empty(t, anon.Home)

	logged := uc.Landing(entity.Session{AccessToken: "A", Role: entity.RoleCashier})
	assert.True(t, logged.Authenticated)
	assert.Equal(t, "/cashier", logged.Home)
}

func TestLoginFormYUnauthorized(t *testing.T) {
	uc, _ := newUseCase(&fakeGateway{})

	form := uc.LoginForm(entity.Session{PendingRoleSelection: entity.RoleAdmin})
	assert.Equal(t, "Admin", form.PendingRole)
	assert.Equal(t, 2, form.MinPasswordLength)
	assert.Equal(t, string(auth.StateIdle), form.State)

	assert.Equal(t, "/", uc.Unauthorized(entity.Session{}).Home)
	assert.Equal(t, "/manager", uc.Unauthorized(entity.Session{Role: entity.RoleManager}).Home)
}
