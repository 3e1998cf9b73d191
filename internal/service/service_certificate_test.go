package service

import (
	"context"
	"testing"

	"github.com/avolkova/gift-certificates/internal/links"
	"github.com/avolkova/gift-certificates/internal/logger"
	"github.com/avolkova/gift-certificates/internal/mock"
	"github.com/avolkova/gift-certificates/internal/store"
	"github.com/avolkova/gift-certificates/internal/validators"
	"github.com/avolkova/gift-certificates/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCertificateSvc(t *testing.T, ctrl *gomock.Controller) (CertificateService, *mock.MockCertificateRepository) {
	t.Helper()
	repo := mock.NewMockCertificateRepository(ctrl)
	svc := NewCertificateService(repo, links.NewProvider(), logger.Nop())
	return svc, repo
}

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

// ── Create ───────────────────────────────────────────────────────────────────

func TestCertificateService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo := newTestCertificateSvc(t, ctrl)

	cert := models.Certificate{Name: "Yoga", Price: 4990, Duration: 90}
	repo.EXPECT().Create(gomock.Any(), cert).Return(cert, nil)

	err := svc.Create(context.Background(), cert)
	require.NoError(t, err)
}

func TestCertificateService_Create_InvalidEntitySkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestCertificateSvc(t, ctrl)

	// no EXPECT on the repository: the store must never be invoked
	err := svc.Create(context.Background(), models.Certificate{Name: "", Duration: 30})
	require.ErrorIs(t, err, validators.ErrEmptyCertificateName)
}

func TestCertificateService_Create_DuplicateNamePropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo := newTestCertificateSvc(t, ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(models.Certificate{}, store.ErrCertificateNameExists)

	err := svc.Create(context.Background(), models.Certificate{Name: "Yoga", Duration: 30})
	require.ErrorIs(t, err, store.ErrCertificateNameExists)
}

// ── FindAll ──────────────────────────────────────────────────────────────────

func TestCertificateService_FindAll_PassesFilterAndEnriches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo := newTestCertificateSvc(t, ctrl)

	filter := store.CertificateFilter{TagNames: []string{"fit", "gym"}, PartName: "pass", Page: 1, Size: 20}
	repo.EXPECT().FindAll(gomock.Any(), filter).
		Return([]models.Certificate{{ID: 2, Name: "Gym Pass"}}, nil)

	result, err := svc.FindAll(context.Background(), []string{"fit", "gym"}, "pass", 1, 20)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, int64(2), result[0].ID)
	require.NotEmpty(t, result[0].Links)
	assert.Equal(t, "self", result[0].Links[0].Rel)
	assert.Equal(t, "/certificates/2", result[0].Links[0].Href)
}

func TestCertificateService_FindAll_InvalidPaginationSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestCertificateSvc(t, ctrl)

	_, err := svc.FindAll(context.Background(), nil, "", -1, 10)
	require.ErrorIs(t, err, validators.ErrInvalidPage)

	_, err = svc.FindAll(context.Background(), nil, "", 0, 0)
	require.ErrorIs(t, err, validators.ErrInvalidSize)
}

// ── FindByID ─────────────────────────────────────────────────────────────────

func TestCertificateService_FindByID_Enriches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo := newTestCertificateSvc(t, ctrl)

	repo.EXPECT().FindByID(gomock.Any(), int64(5)).
		Return(models.Certificate{ID: 5, Name: "Yoga"}, nil)

	cert, err := svc.FindByID(context.Background(), 5)
	require.NoError(t, err)

	wantRels := []string{"self", "update", "delete", "purchase"}
	require.Len(t, cert.Links, len(wantRels))
	for i, rel := range wantRels {
		assert.Equal(t, rel, cert.Links[i].Rel)
	}
}

func TestCertificateService_FindByID_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestCertificateSvc(t, ctrl)

	_, err := svc.FindByID(context.Background(), 0)
	require.ErrorIs(t, err, validators.ErrInvalidID)
}

func TestCertificateService_FindByID_NotFoundPropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo := newTestCertificateSvc(t, ctrl)

	repo.EXPECT().FindByID(gomock.Any(), int64(99)).
		Return(models.Certificate{}, store.ErrCertificateNotFound)

	_, err := svc.FindByID(context.Background(), 99)
	require.ErrorIs(t, err, store.ErrCertificateNotFound)
}

// ── UpdateByID ───────────────────────────────────────────────────────────────

func TestCertificateService_UpdateByID_MergesOnlyPresentFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo := newTestCertificateSvc(t, ctrl)

	snapshot := models.Certificate{ID: 5, Name: "Yoga", Description: "Ten classes", Price: 4990, Duration: 90}
	patch := models.CertificatePatch{Price: int64Ptr(5990)}

	merged := snapshot
	merged.Price = 5990

	repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(snapshot, nil)
	repo.EXPECT().Update(gomock.Any(), merged, false).Return(merged, nil)

	updated, err := svc.UpdateByID(context.Background(), 5, patch)
	require.NoError(t, err)

	assert.Equal(t, int64(5990), updated.Price)
	assert.Equal(t, "Yoga", updated.Name, "untouched fields keep prior values")
	assert.NotEmpty(t, updated.Links)
}

func TestCertificateService_UpdateByID_EmptyPatchIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo := newTestCertificateSvc(t, ctrl)

	snapshot := models.Certificate{ID: 5, Name: "Yoga", Price: 4990, Duration: 90}
	// FindByID only; Update must not be called
	repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(snapshot, nil)

	updated, err := svc.UpdateByID(context.Background(), 5, models.CertificatePatch{})
	require.NoError(t, err)

	assert.Equal(t, snapshot.Name, updated.Name)
	assert.Equal(t, snapshot.Price, updated.Price)
	assert.NotEmpty(t, updated.Links)
}

func TestCertificateService_UpdateByID_TagsPatchReplacesAssociations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo := newTestCertificateSvc(t, ctrl)

	snapshot := models.Certificate{ID: 5, Name: "Yoga", Price: 100, Duration: 30, Tags: []models.Tag{{Name: "fit"}}}
	patch := models.CertificatePatch{Tags: []models.Tag{{Name: "wellness"}}}

	merged := snapshot
	merged.Tags = patch.Tags

	repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(snapshot, nil)
	repo.EXPECT().Update(gomock.Any(), merged, true).Return(merged, nil)

	updated, err := svc.UpdateByID(context.Background(), 5, patch)
	require.NoError(t, err)
	assert.Equal(t, "wellness", updated.Tags[0].Name)
}

func TestCertificateService_UpdateByID_MergedStateMustStayValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo := newTestCertificateSvc(t, ctrl)

	snapshot := models.Certificate{ID: 5, Name: "Yoga", Price: 100, Duration: 30}
	repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(snapshot, nil)
	// Update must not be called: merged value violates an invariant

	_, err := svc.UpdateByID(context.Background(), 5, models.CertificatePatch{Name: strPtr("")})
	require.ErrorIs(t, err, validators.ErrEmptyCertificateName)

	repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(snapshot, nil)
	_, err = svc.UpdateByID(context.Background(), 5, models.CertificatePatch{Duration: intPtr(0)})
	require.ErrorIs(t, err, validators.ErrNonPositiveDuration)
}

// ── DeleteByID ───────────────────────────────────────────────────────────────

func TestCertificateService_DeleteByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo := newTestCertificateSvc(t, ctrl)

	repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)
	require.NoError(t, svc.DeleteByID(context.Background(), 5))

	repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(store.ErrCertificateNotFound)
	err := svc.DeleteByID(context.Background(), 5)
	require.ErrorIs(t, err, store.ErrCertificateNotFound,
		"second delete reports not-found instead of silently succeeding")
}
