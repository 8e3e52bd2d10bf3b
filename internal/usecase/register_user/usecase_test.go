package register_user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parqr/parqr-backend/internal/domain"
	"github.com/parqr/parqr-backend/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUserRepo struct {
	users  []*domain.User
	nextID int64
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	created := *user
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	r.users = append(r.users, &created)
	return &created, nil
}

func (r *fakeUserRepo) ExistsByPhoneNumber(_ context.Context, phone string) (bool, error) {
	for _, u := range r.users {
		if u.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByUserCode(_ context.Context, userCode string) (bool, error) {
	for _, u := range r.users {
		if u.UserCode == userCode {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByQRCodeID(_ context.Context, qrCodeID string) (bool, error) {
	for _, u := range r.users {
		if u.QRCodeID == qrCodeID {
			return true, nil
		}
	}
	return false, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newUseCaseWithRepo() (*UseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	return NewUseCase(repo, passthroughTxManager{}, nopLogger{}), repo
}

func TestExecute_RegistersKoreanUser(t *testing.T) {
	uc, repo := newUseCaseWithRepo()

	resp, err := uc.Execute(context.Background(), &Request{
		PhoneNumber:      "01012345678",
		SignupCountryISO: "KR",
		DisplayName:      ptr.Ptr("Jay"),
	})
	require.NoError(t, err)

	assert.Equal(t, "+821012345678", resp.PhoneNumber)
	assert.Equal(t, "KR", resp.SignupCountryISO)
	assert.Regexp(t, `^[A-Z0-9]{8}$`, resp.UserCode)
	assert.Regexp(t, `^QR_[0-9A-F]{8}$`, resp.QRCodeID)
	require.NotNil(t, resp.DisplayName)
	assert.Equal(t, "Jay", *resp.DisplayName)

	require.Len(t, repo.users, 1)
	assert.Equal(t, "+821012345678", repo.users[0].PhoneNumber)
}

func TestExecute_LowercaseCountryIsNormalized(t *testing.T) {
	uc, _ := newUseCaseWithRepo()

	resp, err := uc.Execute(context.Background(), &Request{
		PhoneNumber:      "01012345678",
		SignupCountryISO: "kr",
	})
	require.NoError(t, err)
	assert.Equal(t, "KR", resp.SignupCountryISO)
}

func TestExecute_NonKoreanNumberIsStoredAsIs(t *testing.T) {
	uc, _ := newUseCaseWithRepo()

	resp, err := uc.Execute(context.Background(), &Request{
		PhoneNumber:      "+1 415-555-0134",
		SignupCountryISO: "US",
	})
	require.NoError(t, err)
	assert.Equal(t, "+1 415-555-0134", resp.PhoneNumber)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"empty phone", &Request{PhoneNumber: "", SignupCountryISO: "KR"}, ErrInvalidInput},
		{"empty country", &Request{PhoneNumber: "01012345678", SignupCountryISO: ""}, ErrInvalidInput},
		{"unserviced country", &Request{PhoneNumber: "01012345678", SignupCountryISO: "BR"}, ErrCountryNotServiced},
		{"korean number too short", &Request{PhoneNumber: "0101234567", SignupCountryISO: "KR"}, ErrInvalidPhoneNumber},
		{"korean number wrong prefix", &Request{PhoneNumber: "01112345678", SignupCountryISO: "KR"}, ErrInvalidPhoneNumber},
		{"non-korean number with letters", &Request{PhoneNumber: "call-me", SignupCountryISO: "US"}, ErrInvalidPhoneNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newUseCaseWithRepo()

			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.users)
		})
	}
}

func TestExecute_DuplicatePhoneRejected(t *testing.T) {
	uc, repo := newUseCaseWithRepo()

	_, err := uc.Execute(context.Background(), &Request{
		PhoneNumber:      "01012345678",
		SignupCountryISO: "KR",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{
		PhoneNumber:      "01012345678",
		SignupCountryISO: "KR",
	})
	require.ErrorIs(t, err, ErrPhoneAlreadyRegistered)
	assert.Len(t, repo.users, 1)
}
