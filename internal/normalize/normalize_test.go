package normalize

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tsconv/internal/instance"
)

func TestNormalize_Scenarios(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		input        string
		wantStrategy string
		want         *instance.Instance
	}{
		{
			name:         "Labeled header with brace jobs",
			input:        "n=3\nm=4\njobs:\n{1,2}\n{3}\n{}\n",
			wantStrategy: "sections",
			want: &instance.Instance{
				M: 4, C: 3, N: 3,
				Costs: []int{1, 1, 1, 1},
				Jobs:  []instance.Job{{1, 2}, {3}, {}},
			},
		},
		{
			name:         "Loose lines without any header",
			input:        "1 2\n3\n4 5 6\n",
			wantStrategy: "loose",
			want: &instance.Instance{
				M: 6, C: 5, N: 3,
				Costs: []int{1, 1, 1, 1, 1, 1},
				Jobs:  []instance.Job{{1, 2}, {3}, {4, 5, 6}},
			},
		},
		{
			name:         "Triple header where neither reading has enough records",
			input:        "3 2 5\n2 1 2\n1 3\n",
			wantStrategy: "loose",
			want: &instance.Instance{
				M: 5, C: 4, N: 3,
				Costs: []int{1, 1, 1, 1, 1},
				Jobs:  []instance.Job{{3, 2, 5}, {2, 1, 2}, {1, 3}},
			},
		},
		{
			name:         "Bare list jobs with whitespace separated labels",
			input:        "N 2\nM 5\nK 3\njobs\n1, 2, 5\n4 3\n",
			wantStrategy: "sections",
			want: &instance.Instance{
				M: 5, C: 3, N: 2,
				Costs: []int{1, 1, 1, 1, 1},
				Jobs:  []instance.Job{{1, 2, 5}, {4, 3}},
			},
		},
		{
			name: "Comments are stripped before parsing",
			input: "# instance from the lab\n" +
				"n=2 // two jobs\n" +
				"m=3 # tools\n" +
				"\n" +
				"jobs:\n" +
				"{1, 2} # first\n" +
				"// nothing here\n" +
				"{3}\n",
			wantStrategy: "sections",
			want: &instance.Instance{
				M: 3, C: 2, N: 2,
				Costs: []int{1, 1, 1},
				Jobs:  []instance.Job{{1, 2}, {3}},
			},
		},
		{
			name:         "Unparseable lines inside the jobs section are skipped",
			input:        "jobs:\n{1,2}\nfoo bar\n{1, x}\n{3}\n",
			wantStrategy: "sections",
			want: &instance.Instance{
				M: 3, C: 2, N: 2,
				Costs: []int{1, 1, 1},
				Jobs:  []instance.Job{{1, 2}, {3}},
			},
		},
		{
			name:         "Labels inside the jobs section still count as fields",
			input:        "jobs:\n{1}\nk=1\n{2}\n",
			wantStrategy: "sections",
			want: &instance.Instance{
				M: 2, C: 1, N: 2,
				Costs: []int{1, 1},
				Jobs:  []instance.Job{{1}, {2}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := Normalize(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.wantStrategy, res.Trace.Strategy)

			if diff := cmp.Diff(tc.want, res.Instance); diff != "" {
				t.Errorf("Instance mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_SetupTimes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		input     string
		wantM     int
		wantCosts []int
	}{
		{
			name:      "Values on the next line are padded with the last value",
			input:     "m=4\nsetup_times:\n5 6\njobs:\n1 2\n",
			wantM:     4,
			wantCosts: []int{5, 6, 6, 6},
		},
		{
			name:      "Inline values are truncated to M",
			input:     "setup times = 1,2,3,4,5,6\nm 3\njobs\n{1}\n",
			wantM:     3,
			wantCosts: []int{1, 2, 3},
		},
		{
			name:      "M falls back to the array length when no tool is referenced",
			input:     "setup_times: 4 4\njobs:\n{}\n",
			wantM:     2,
			wantCosts: []int{4, 4},
		},
		{
			name:      "M falls back to one without tools or costs",
			input:     "jobs:\n{}\n",
			wantM:     1,
			wantCosts: []int{1},
		},
		{
			name:      "Processing times do not feed the cost vector",
			input:     "processing_times:\n9 9 9\njobs:\n{1, 2}\n",
			wantM:     2,
			wantCosts: []int{1, 1},
		},
		{
			name:      "Canonical costs label is accepted",
			input:     "M=3\ncosts: 7 8 9\njobs:\n1 3\n",
			wantM:     3,
			wantCosts: []int{7, 8, 9},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := Normalize(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.wantM, res.Instance.M)
			require.Equal(t, tc.wantCosts, res.Instance.Costs)
			require.Len(t, res.Instance.Costs, res.Instance.M)
		})
	}
}

func TestNormalize_DefaultCapacity(t *testing.T) {
	t.Parallel()

	res, err := Normalize("jobs:\n{1, 40}\n")
	require.NoError(t, err)
	assert.Equal(t, 40, res.Instance.M)
	assert.Equal(t, 10, res.Instance.C, "default capacity is capped at 10")

	res, err = Normalize("jobs:\n{}\n")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Instance.C, "default capacity never drops below 1")
}

func TestNormalize_EarlierEvidenceWins(t *testing.T) {
	t.Parallel()

	res, err := Normalize("m=4\nm=9\ntools=11\njobs:\n1\n")
	require.NoError(t, err)
	require.Equal(t, 4, res.Instance.M)
}

func TestNormalize_DeclaredJobCountMismatch(t *testing.T) {
	t.Parallel()

	res, err := Normalize("n=5\njobs:\n1\n2\n")
	require.NoError(t, err)
	require.Equal(t, 2, res.Instance.N)
	require.Len(t, res.Instance.Jobs, res.Instance.N)
	require.Len(t, res.Trace.Warnings, 1)
	require.Contains(t, res.Trace.Warnings[0], "declared job count 5")
}

func TestNormalize_OutOfRangeIsFlagged(t *testing.T) {
	t.Parallel()

	res, err := Normalize("m=2\njobs:\n{1, 3}\n{0}\n")
	require.NoError(t, err)

	require.Equal(t, []instance.Job{{1, 3}, {0}}, res.Instance.Jobs, "out-of-range ids are kept")
	require.Equal(t, []instance.ToolRef{{Job: 1, Tool: 3}, {Job: 2, Tool: 0}}, res.Instance.OutOfRange())
	require.Len(t, res.Trace.Warnings, 2)
}

func TestNormalize_AlreadyCanonical(t *testing.T) {
	t.Parallel()

	res, err := Normalize("n=3\nm=4\njobs:\n{1,2}\n{3}\n{}\n")
	require.NoError(t, err)

	again, err := Normalize(string(instance.Format(res.Instance)))
	require.ErrorIs(t, err, ErrAlreadyCanonical)
	require.Nil(t, again)
}

func TestNormalize_Idempotence(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"n=3\nm=4\njobs:\n{1,2}\n{3}\n{}\n",
		"1 2\n3\n4 5 6\n",
		"2 1 3\n1 1\n1 2\n1 1\n",
		"setup_times: 4 4\njobs:\n{}\n",
		"m=2\njobs:\n{1, 3}\n",
	}
	for _, input := range inputs {
		res, err := Normalize(input)
		require.NoError(t, err, input)

		out := string(instance.Format(res.Instance))
		_, err = Normalize(out)
		require.ErrorIs(t, err, ErrAlreadyCanonical, input)

		parsed, err := instance.Read(strings.NewReader(out))
		require.NoError(t, err, input)
		require.Equal(t, parsed.N, len(parsed.Jobs), input)
		require.Len(t, parsed.Costs, parsed.M, input)
	}
}

func TestNormalize_CanonicalBodyReparses(t *testing.T) {
	t.Parallel()

	res, err := Normalize("n=2\nm=3\nk=2\nsetup_times: 3 4 5\njobs:\n{1,2}\n{3}\n")
	require.NoError(t, err)

	out := string(instance.Format(res.Instance))
	_, body, found := strings.Cut(out, "\n")
	require.True(t, found)

	again, err := Normalize(body)
	require.NoError(t, err)
	if diff := cmp.Diff(res.Instance, again.Instance); diff != "" {
		t.Errorf("Instance mismatch (-first +second):\n%s", diff)
	}
}

func TestNormalize_Unrecognized(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
	}{
		{name: "No integers anywhere", input: "hello world\nno numbers here\n"},
		{name: "Empty file", input: ""},
		{name: "Only comments", input: "# nothing\n// still nothing\n"},
		{name: "Jobs header without job lines", input: "n=2\njobs:\nabc\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := Normalize(tc.input)
			require.ErrorIs(t, err, ErrUnrecognizedFormat)
			require.Nil(t, res)
		})
	}
}

func TestNormalize_TooManyTools(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
	}{
		{name: "Labeled tool count", input: "m=1099511627776\njobs:\n{1}\n"},
		{name: "Jobs-first triple header", input: "1 1 1099511627776\n1 1\n"},
		{name: "Tool id sets the tool count", input: "jobs:\n{1099511627776}\n"},
		{name: "One above the limit", input: "m=1048577\njobs:\n{1}\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := Normalize(tc.input)
			require.ErrorIs(t, err, ErrTooManyTools)
			require.Nil(t, res)
		})
	}
}
