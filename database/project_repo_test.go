package database

import (
	"context"
	"testing"

	"github.com/rpupo63/emp-classrooms-backend/models"
	"github.com/rpupo63/emp-classrooms-backend/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectIDs(projects []*models.Project) []uint {
	ids := make([]uint, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestProjectRepo_FindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	school := testutil.CreateSchool(t, db, "Lincoln Elementary")
	teacher := testutil.CreateTeacher(t, db, "Ada", school)
	p := testutil.CreateProject(t, db, &models.Project{Title: "Books", TeacherID: &teacher.ID, SchoolID: &school.ID})
	testutil.CreateDonation(t, db, 25, p)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Books", got.Title)
	require.NotNil(t, got.Teacher)
	assert.Equal(t, teacher.ID, got.Teacher.ID)
	require.NotNil(t, got.School)
	assert.Equal(t, school.ID, got.School.ID)
	assert.Len(t, got.Donations, 1)

	missing, err := repo.FindByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProjectRepo_FindByApproval(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	approved := testutil.CreateProject(t, db, &models.Project{Title: "a", IsApproved: testutil.Bool(true)})
	rejected := testutil.CreateProject(t, db, &models.Project{Title: "b", IsApproved: testutil.Bool(false)})
	unset := testutil.CreateProject(t, db, &models.Project{Title: "c"})

	got, err := repo.FindByApproval(ctx, testutil.Bool(true))
	require.NoError(t, err)
	assert.Equal(t, []uint{approved.ID}, projectIDs(got))

	got, err = repo.FindByApproval(ctx, testutil.Bool(false))
	require.NoError(t, err)
	assert.Equal(t, []uint{rejected.ID}, projectIDs(got))

	got, err = repo.FindByApproval(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{unset.ID}, projectIDs(got))
}

func TestProjectRepo_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	byTitle := testutil.CreateProject(t, db, &models.Project{Title: "MATH Games", IsApproved: testutil.Bool(true)})
	bySynopsis := testutil.CreateProject(t, db, &models.Project{Title: "Tablets", Synopsis: "For math class", IsApproved: testutil.Bool(true)})
	byShort := testutil.CreateProject(t, db, &models.Project{Title: "Paper", ShortDescription: "Mathematics paper", IsApproved: testutil.Bool(true)})
	testutil.CreateProject(t, db, &models.Project{Title: "Math pending", IsApproved: testutil.Bool(false)})
	testutil.CreateProject(t, db, &models.Project{Title: "Art", IsApproved: testutil.Bool(true)})

	got, err := repo.Search(ctx, "math", testutil.Bool(true))
	require.NoError(t, err)
	assert.Equal(t, []uint{byTitle.ID, bySynopsis.ID, byShort.ID}, projectIDs(got))

	got, err = repo.Search(ctx, "zzz", testutil.Bool(true))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProjectRepo_Search_TreatsWildcardsLiterally(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	literal := testutil.CreateProject(t, db, &models.Project{Title: "100% funded", IsApproved: testutil.Bool(true)})
	testutil.CreateProject(t, db, &models.Project{Title: "100 pencils", IsApproved: testutil.Bool(true)})

	got, err := repo.Search(ctx, "100%", testutil.Bool(true))
	require.NoError(t, err)
	assert.Equal(t, []uint{literal.ID}, projectIDs(got))
}

func TestProjectRepo_Search_FoldsNonASCIICase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	garden := testutil.CreateProject(t, db, &models.Project{Title: "École Garden", IsApproved: testutil.Bool(true)})
	testutil.CreateProject(t, db, &models.Project{Title: "Ecole pencils", IsApproved: testutil.Bool(true)})

	for _, q := range []string{"école", "ÉCOLE", "garden", "GARDEN"} {
		got, err := repo.Search(ctx, q, testutil.Bool(true))
		require.NoError(t, err)
		assert.Equal(t, []uint{garden.ID}, projectIDs(got), "query %q", q)
	}
}

func TestProjectRepo_FindByTeacherID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	ada := testutil.CreateTeacher(t, db, "Ada", nil)
	bob := testutil.CreateTeacher(t, db, "Bob", nil)
	p1 := testutil.CreateProject(t, db, &models.Project{Title: "1", TeacherID: &ada.ID})
	testutil.CreateProject(t, db, &models.Project{Title: "2", TeacherID: &bob.ID})
	p3 := testutil.CreateProject(t, db, &models.Project{Title: "3", TeacherID: &ada.ID})

	got, err := repo.FindByTeacherID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{p1.ID, p3.ID}, projectIDs(got))
}

func TestProjectRepo_AddUpdateDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	p := &models.Project{Title: "Microscopes", TotalPrice: 300, CostToComplete: 300}
	require.NoError(t, repo.Add(ctx, p))
	require.NotZero(t, p.ID)

	p.CostToComplete = 120
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, got.CostToComplete)
	assert.Equal(t, 300.0, got.TotalPrice)

	require.NoError(t, repo.Delete(ctx, p.ID))
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
