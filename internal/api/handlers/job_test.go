package handlers_test

import (
	"net/http"
	"testing"

	"github.com/dom/job-board-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEmployer registers a user, marks it as an employer, and creates a
// company profile, all through the HTTP API.
func setupEmployer(t *testing.T, ts *testutil.TestServer, client *http.Client, email, companyName string) {
	t.Helper()

	testutil.RegisterViaAPI(t, ts, client, email, "password123")

	resp := postJSON(t, client, ts.APIURL("/user/select-type"), map[string]string{"userType": "employer"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, client, ts.APIURL("/company/profile"), map[string]string{"companyName": companyName})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func setupJobSeeker(t *testing.T, ts *testutil.TestServer, client *http.Client, email string) {
	t.Helper()

	testutil.RegisterViaAPI(t, ts, client, email, "password123")

	resp := postJSON(t, client, ts.APIURL("/user/select-type"), map[string]string{"userType": "job_seeker"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, client, ts.APIURL("/job-seeker/profile"), map[string]any{
		"title":  "Engineer",
		"skills": []string{"go"},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJobs_PostSearchApplyFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)

	employer := testutil.NewSessionClient(t)
	setupEmployer(t, ts, employer, "employer@example.com", "Acme")

	resp := postJSON(t, employer, ts.APIURL("/jobs"), map[string]any{
		"title":           "Engineer",
		"description":     "Write software",
		"location":        "Remote",
		"jobType":         "full_time",
		"experienceLevel": "mid",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var posting map[string]any
	decodeBody(t, resp, &posting)
	jobID, _ := posting["id"].(string)
	require.NotEmpty(t, jobID)

	// Anyone can browse and filter postings.
	anon := testutil.NewSessionClient(t)
	listResp, err := anon.Get(ts.APIURL("/jobs?search=engineer&jobType=full_time"))
	require.NoError(t, err)
	var listed []map[string]any
	decodeBody(t, listResp, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "Engineer", listed[0]["title"])

	seeker := testutil.NewSessionClient(t)
	setupJobSeeker(t, ts, seeker, "seeker@example.com")

	resp = postJSON(t, seeker, ts.APIURL("/jobs/"+jobID+"/apply"), map[string]string{
		"coverLetter": "Please consider me",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var application map[string]any
	decodeBody(t, resp, &application)
	assert.Equal(t, "pending", application["status"])

	appsResp, err := employer.Get(ts.APIURL("/jobs/" + jobID + "/applications"))
	require.NoError(t, err)
	var applications []map[string]any
	decodeBody(t, appsResp, &applications)
	require.Len(t, applications, 1)
	assert.Equal(t, application["id"], applications[0]["id"])

	mineResp, err := seeker.Get(ts.APIURL("/job-seeker/applications"))
	require.NoError(t, err)
	var mine []map[string]any
	decodeBody(t, mineResp, &mine)
	assert.Len(t, mine, 1)
}

func TestJobs_CreateRejectsInvalidInput(t *testing.T) {
	ts := testutil.NewTestServer(t)
	employer := testutil.NewSessionClient(t)
	setupEmployer(t, ts, employer, "employer@example.com", "Acme")

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing job type", map[string]any{"title": "X", "experienceLevel": "mid"}},
		{"invalid job type", map[string]any{"title": "X", "jobType": "gig", "experienceLevel": "mid"}},
		{"missing experience level", map[string]any{"title": "X", "jobType": "full_time"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, employer, ts.APIURL("/jobs"), tt.body)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestJobs_SeekerCannotPost(t *testing.T) {
	ts := testutil.NewTestServer(t)
	seeker := testutil.NewSessionClient(t)
	setupJobSeeker(t, ts, seeker, "seeker@example.com")

	resp := postJSON(t, seeker, ts.APIURL("/jobs"), map[string]any{
		"title":           "Engineer",
		"jobType":         "full_time",
		"experienceLevel": "mid",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestJobs_ApplyToMissingJob(t *testing.T) {
	ts := testutil.NewTestServer(t)
	seeker := testutil.NewSessionClient(t)
	setupJobSeeker(t, ts, seeker, "seeker@example.com")

	resp := postJSON(t, seeker, ts.APIURL("/jobs/no-such-job/apply"), map[string]string{})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
