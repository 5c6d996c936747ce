package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/pkg/apperrors"
)

type stubClassStore struct {
	classes []*models.Class

	createdClass   *models.Class
	statusUpdates  map[int64]models.ClassStatus
	feedbackUpdate string
	feedbackID     int64
}

func newStubClassStore() *stubClassStore {
	return &stubClassStore{statusUpdates: make(map[int64]models.ClassStatus)}
}

func (s *stubClassStore) GetAll(_ context.Context, instructorEmail string) ([]*models.Class, error) {
	if instructorEmail == "" {
		return s.classes, nil
	}
	var filtered []*models.Class
	for _, c := range s.classes {
		if c.InstructorEmail == instructorEmail {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *stubClassStore) Create(_ context.Context, class *models.Class) (int64, error) {
	s.createdClass = class
	return 42, nil
}

func (s *stubClassStore) UpdateStatus(_ context.Context, id int64, status models.ClassStatus) (int64, error) {
	s.statusUpdates[id] = status
	return 1, nil
}

func (s *stubClassStore) UpdateFeedback(_ context.Context, id int64, feedback string) (int64, error) {
	s.feedbackID = id
	s.feedbackUpdate = feedback
	return 1, nil
}

func TestCreateClass_ForcesPendingStatus(t *testing.T) {
	store := newStubClassStore()
	svc := NewClassService(store)

	class := &models.Class{
		Name:            "German A1",
		InstructorEmail: "maria@lingora.app",
		Status:          models.ClassApproved,
	}

	id, err := svc.CreateClass(context.Background(), class)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, models.ClassPending, store.createdClass.Status)
}

func TestCreateClass_RequiresNameAndEmail(t *testing.T) {
	svc := NewClassService(newStubClassStore())

	_, err := svc.CreateClass(context.Background(), &models.Class{InstructorEmail: "x@y.z"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateClass(context.Background(), &models.Class{Name: "German A1"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestApplyAction_Approve(t *testing.T) {
	store := newStubClassStore()
	svc := NewClassService(store)

	affected, err := svc.ApplyAction(context.Background(), 7, "approve", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, models.ClassApproved, store.statusUpdates[7])
}

func TestApplyAction_Deny(t *testing.T) {
	store := newStubClassStore()
	svc := NewClassService(store)

	affected, err := svc.ApplyAction(context.Background(), 7, "deny", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, models.ClassDenied, store.statusUpdates[7])
}

func TestApplyAction_Feedback(t *testing.T) {
	store := newStubClassStore()
	svc := NewClassService(store)

	affected, err := svc.ApplyAction(context.Background(), 7, "feedback", "needs a syllabus")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, int64(7), store.feedbackID)
	assert.Equal(t, "needs a syllabus", store.feedbackUpdate)
	assert.Empty(t, store.statusUpdates)
}

func TestApplyAction_UnknownActionMutatesNothing(t *testing.T) {
	store := newStubClassStore()
	svc := NewClassService(store)

	_, err := svc.ApplyAction(context.Background(), 7, "publish", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAction)
	assert.Empty(t, store.statusUpdates)
	assert.Zero(t, store.feedbackID)
}

func TestGetClasses_FilterByInstructor(t *testing.T) {
	store := newStubClassStore()
	store.classes = []*models.Class{
		{ID: 1, InstructorEmail: "maria@lingora.app"},
		{ID: 2, InstructorEmail: "jun@lingora.app"},
	}
	svc := NewClassService(store)

	all, err := svc.GetClasses(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.GetClasses(context.Background(), "jun@lingora.app")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(2), mine[0].ID)
}
