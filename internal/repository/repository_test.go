package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auditplay/internal/models"
	"auditplay/internal/repository"
	"auditplay/internal/testutil"
)

func TestRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	containers := testutil.SetupPostgres(t)
	defer containers.Cleanup(t)

	db := containers.DB
	userRepo := repository.NewUserRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	userResponseRepo := repository.NewUserResponseRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)

	t.Run("user create and duplicate email", func(t *testing.T) {
		containers.Reset(t)

		user := &models.User{
			Name:         "First",
			Email:        "first@test.com",
			Profile:      models.ProfileAudited,
			PasswordHash: "x",
		}
		require.NoError(t, userRepo.Create(user))
		assert.NotZero(t, user.ID)

		dup := &models.User{
			Name:         "Second",
			Email:        "first@test.com",
			Profile:      models.ProfileAudited,
			PasswordHash: "x",
		}
		err := userRepo.Create(dup)
		assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

		found, err := userRepo.GetByEmail("first@test.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		_, err = userRepo.GetByEmail("nobody@test.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("response upsert preserves row id", func(t *testing.T) {
		containers.Reset(t)

		require.NoError(t, responseRepo.Upsert(db, "pessoas", "q1", "yes", "because"))

		first, err := responseRepo.ListByCategory("pessoas")
		require.NoError(t, err)
		require.Len(t, first, 1)

		time.Sleep(10 * time.Millisecond)
		require.NoError(t, responseRepo.Upsert(db, "pessoas", "q1", "no", ""))

		second, err := responseRepo.ListByCategory("pessoas")
		require.NoError(t, err)
		require.Len(t, second, 1)

		assert.Equal(t, first[0].ID, second[0].ID)
		assert.Equal(t, "no", second[0].Answer)
		assert.Equal(t, "", second[0].Justification)
		assert.True(t, second[0].UpdatedAt.After(first[0].UpdatedAt) || second[0].UpdatedAt.Equal(first[0].UpdatedAt))
	})

	t.Run("user response upsert preserves row id", func(t *testing.T) {
		containers.Reset(t)
		fixtures := testutil.SetupFixtures(t, db)

		require.NoError(t, userResponseRepo.Upsert(db, fixtures.AuditedUser.ID, "fisicos", "q1", "yes", "j"))
		require.NoError(t, userResponseRepo.Upsert(db, fixtures.AuditedUser.ID, "fisicos", "q1", "no", "j2"))

		responses, err := userResponseRepo.ListByUserAndCategory(fixtures.AuditedUser.ID, "fisicos")
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "no", responses[0].Answer)
	})

	t.Run("respondents are distinct per category", func(t *testing.T) {
		containers.Reset(t)
		fixtures := testutil.SetupFixtures(t, db)
		other := testutil.CreateUser(t, db, "other@test.com", "Other", models.ProfileAudited)

		testutil.CreateUserResponse(t, db, fixtures.AuditedUser.ID, "pessoas", "q1", "yes")
		testutil.CreateUserResponse(t, db, fixtures.AuditedUser.ID, "pessoas", "q2", "no")
		testutil.CreateUserResponse(t, db, other.ID, "pessoas", "q1", "yes")
		testutil.CreateUserResponse(t, db, other.ID, "tecnologicos", "q1", "yes")

		respondents, err := userResponseRepo.ListRespondents("pessoas")
		require.NoError(t, err)
		assert.Len(t, respondents, 2)

		respondents, err = userResponseRepo.ListRespondents("tecnologicos")
		require.NoError(t, err)
		require.Len(t, respondents, 1)
		assert.Equal(t, other.ID, respondents[0].UserID)
	})

	t.Run("category statuses global and per user", func(t *testing.T) {
		containers.Reset(t)
		fixtures := testutil.SetupFixtures(t, db)

		statuses, err := categoryRepo.ListStatuses()
		require.NoError(t, err)
		assert.Len(t, statuses, len(models.DefaultCategories))

		require.NoError(t, categoryRepo.SetStatus(db, "pessoas", models.StatusAnswered))
		statuses, err = categoryRepo.ListStatuses()
		require.NoError(t, err)
		for _, s := range statuses {
			if s.Category == "pessoas" {
				assert.Equal(t, models.StatusAnswered, s.Status)
			}
		}

		require.NoError(t, categoryRepo.Reset("pessoas"))
		statuses, err = categoryRepo.ListStatuses()
		require.NoError(t, err)
		for _, s := range statuses {
			assert.Equal(t, models.StatusPending, s.Status)
		}

		require.NoError(t, categoryRepo.SetUserStatus(db, fixtures.AuditedUser.ID, "fisicos", models.StatusAnswered))
		userStatuses, err := categoryRepo.ListUserStatuses(fixtures.AuditedUser.ID)
		require.NoError(t, err)
		require.Len(t, userStatuses, 1)
		assert.Equal(t, "fisicos", userStatuses[0].Category)
	})

	t.Run("pending is category granular per auditor", func(t *testing.T) {
		containers.Reset(t)
		fixtures := testutil.SetupFixtures(t, db)
		secondAuditor := testutil.CreateUser(t, db, "auditor2@test.com", "Second Auditor", models.ProfileAuditor)

		r1 := testutil.CreateUserResponse(t, db, fixtures.AuditedUser.ID, "pessoas", "q1", "yes")
		testutil.CreateUserResponse(t, db, fixtures.AuditedUser.ID, "pessoas", "q2", "no")
		testutil.CreateUserResponse(t, db, fixtures.AuditedUser.ID, "fisicos", "q1", "yes")

		// Before any evaluation the user is pending for both auditors
		pending, err := evaluationRepo.ListPendingForAuditor(fixtures.Auditor.ID, "pessoas")
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, fixtures.AuditedUser.ID, pending[0].UserID)

		// One evaluation against any response in the category clears the
		// user for that auditor
		testutil.CreateEvaluation(t, db, r1, fixtures.Auditor.ID, models.VerdictCompliant)

		pending, err = evaluationRepo.ListPendingForAuditor(fixtures.Auditor.ID, "pessoas")
		require.NoError(t, err)
		assert.Empty(t, pending)

		// The other auditor still sees the user as pending
		pending, err = evaluationRepo.ListPendingForAuditor(secondAuditor.ID, "pessoas")
		require.NoError(t, err)
		assert.Len(t, pending, 1)

		// Other categories are unaffected
		pending, err = evaluationRepo.ListPendingForAuditor(fixtures.Auditor.ID, "fisicos")
		require.NoError(t, err)
		assert.Len(t, pending, 1)
	})

	t.Run("dangling evaluation accepted and filtered from listing", func(t *testing.T) {
		containers.Reset(t)
		fixtures := testutil.SetupFixtures(t, db)

		eval := &models.Evaluation{
			UserResponseID: 999999,
			AuditorID:      fixtures.Auditor.ID,
			Verdict:        models.VerdictNonCompliant,
		}
		require.NoError(t, evaluationRepo.Create(eval))
		assert.NotZero(t, eval.ID)

		evaluations, err := evaluationRepo.ListByUserAndCategory(fixtures.AuditedUser.ID, "pessoas")
		require.NoError(t, err)
		assert.Empty(t, evaluations)
	})

	t.Run("empty comment stored as null", func(t *testing.T) {
		containers.Reset(t)
		fixtures := testutil.SetupFixtures(t, db)

		r1 := testutil.CreateUserResponse(t, db, fixtures.AuditedUser.ID, "pessoas", "q1", "yes")

		empty := ""
		eval := &models.Evaluation{
			UserResponseID: r1,
			AuditorID:      fixtures.Auditor.ID,
			Verdict:        models.VerdictCompliant,
			Comment:        &empty,
		}
		require.NoError(t, evaluationRepo.Create(eval))

		evaluations, err := evaluationRepo.ListByUserAndCategory(fixtures.AuditedUser.ID, "pessoas")
		require.NoError(t, err)
		require.Len(t, evaluations, 1)
		assert.Nil(t, evaluations[0].Comment)
	})

	t.Run("evaluation listing joins question key across auditors", func(t *testing.T) {
		containers.Reset(t)
		fixtures := testutil.SetupFixtures(t, db)
		secondAuditor := testutil.CreateUser(t, db, "auditor2@test.com", "Second Auditor", models.ProfileAuditor)

		r1 := testutil.CreateUserResponse(t, db, fixtures.AuditedUser.ID, "pessoas", "q1", "yes")
		testutil.CreateEvaluation(t, db, r1, fixtures.Auditor.ID, models.VerdictCompliant)
		testutil.CreateEvaluation(t, db, r1, secondAuditor.ID, models.VerdictPartiallyCompliant)

		evaluations, err := evaluationRepo.ListByUserAndCategory(fixtures.AuditedUser.ID, "pessoas")
		require.NoError(t, err)
		require.Len(t, evaluations, 2)
		for _, eval := range evaluations {
			assert.Equal(t, "q1", eval.Key)
			assert.Equal(t, r1, eval.UserResponseID)
		}
	})
}
