package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/flexkit/flexb/walker"
	"github.com/joshuapare/flexkit/internal/testutil"
)

func TestInfoCommand(t *testing.T) {
	resetFlags()
	output, err := captureOutput(t, func() error {
		return runInfo([]string{fixturePath(t)})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{
		"Size: 197 bytes",
		"Root: Map at offset 194",
		"Widths: slot 1, data 4",
		"Entries: 6",
	})
	assertNotContains(t, output, []string{"Refs:"})
}

func TestInfoCommand_VerboseJSON(t *testing.T) {
	resetFlags()
	verbose = true
	jsonOut = true
	noMmap = true

	output, err := captureOutput(t, func() error {
		return runInfo([]string{fixturePath(t)})
	})
	require.NoError(t, err)

	// Verbose progress lines precede the document.
	start := 0
	for i, c := range output {
		if c == '{' {
			start = i
			break
		}
	}
	var res infoResult
	require.NoError(t, json.Unmarshal([]byte(output[start:]), &res))
	require.Equal(t, "Map", res.RootType)
	require.NotNil(t, res.Len)
	require.Equal(t, 6, *res.Len)
	require.Equal(t, uint64(22), res.Refs)
	require.Equal(t, uint64(6), res.ByType["String"])
}

func TestInfoCommand_Missing(t *testing.T) {
	resetFlags()
	_, err := captureOutput(t, func() error {
		return runInfo([]string{t.TempDir() + "/missing.flexb"})
	})
	require.Error(t, err)
}

func TestDumpCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		setup          func()
		wantErr        bool
		wantJSON       bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "full tree",
			wantContain: []string{"(root) [Map] (6)", "    2 [IndirectFloat] = 4", `    sbool4 [String] = "0"`},
		},
		{
			name:           "subtree without types",
			args:           []string{"mymap"},
			setup:          func() { dumpNoTypes = true },
			wantContain:    []string{"(root) (5)", `  foo = "Fred"`},
			wantNotContain: []string{"vec", "[String]"},
		},
		{
			name:        "depth limited",
			setup:       func() { dumpDepth = 1 },
			wantContain: []string{"bar [VectorInt] (3) ...", "mymap [Map] (5) ..."},
		},
		{
			name:        "json compact",
			setup:       func() { jsonOut = true; dumpNoTypes = true; dumpIndent = 0 },
			wantJSON:    true,
			wantContain: []string{`"vec":[-100,"Fred",4,false]`},
		},
		{
			name:    "missing path",
			args:    []string{"vec/7"},
			wantErr: true,
		},
		{
			name:           "quiet",
			setup:          func() { quiet = true },
			wantNotContain: []string{"(root)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			if tt.setup != nil {
				tt.setup()
			}
			args := append([]string{fixturePath(t)}, tt.args...)

			output, err := captureOutput(t, func() error {
				return runDump(args)
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("runDump() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestDumpCommand_VerifyRejects(t *testing.T) {
	resetFlags()
	dumpVerified = true
	data := testutil.Clone(testutil.MapBytes)
	data[25] = 'z' // "bar" -> "zar", out of order
	path := testutil.WriteFixture(t, "unsorted.flexb", data)

	_, err := captureOutput(t, func() error {
		return runDump([]string{path})
	})
	require.ErrorContains(t, err, "not strictly ascending")
}

func TestVerifyCommand(t *testing.T) {
	resetFlags()
	output, err := captureOutput(t, func() error {
		return runVerify([]string{fixturePath(t)})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"Result: ✓ VALID"})
}

func TestVerifyCommand_Invalid(t *testing.T) {
	resetFlags()
	jsonOut = true
	data := testutil.Clone(testutil.MapBytes)
	data[testutil.FredOffset-1] = 250
	path := testutil.WriteFixture(t, "badlen.flexb", data)

	output, err := captureOutput(t, func() error {
		return runVerify([]string{path})
	})
	require.Error(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	require.Equal(t, false, result["valid"])
	require.Equal(t, "String", result["check"])
	require.Equal(t, "mymap/foo", result["path"])
}

func TestVerifyCommand_DepthLimit(t *testing.T) {
	resetFlags()
	verifyMaxDepth = 1
	output, err := captureOutput(t, func() error {
		return runVerify([]string{fixturePath(t)})
	})
	require.Error(t, err)
	assertContains(t, output, []string{"Result: ✗ INVALID"})
}

func TestVersionCommand(t *testing.T) {
	resetFlags()
	output, err := captureOutput(t, runVersion)
	require.NoError(t, err)
	assertContains(t, output, []string{"flexbctl ", "commit: ", "go: go"})

	jsonOut = true
	output, err = captureOutput(t, runVersion)
	require.NoError(t, err)
	var res versionResult
	require.NoError(t, json.Unmarshal([]byte(output), &res))
	require.NotEmpty(t, res.Version)
	require.NotEmpty(t, res.GoVersion)
}

func TestDumpCommand_SharedContainers(t *testing.T) {
	resetFlags()
	path := testutil.WriteFixture(t, "fanout.flexb", testutil.SharedFanout(40))

	jsonOut = true
	dumpMaxNodes = 1000
	_, err := captureOutput(t, func() error {
		return runDump([]string{path})
	})
	require.ErrorIs(t, err, walker.ErrTooManyNodes)

	jsonOut = false
	dumpVerified = true
	dumpDepth = 2
	output, err := captureOutput(t, func() error {
		return runDump([]string{path})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"(root) [Vector] (2)", "0 [Vector] (2) ..."})
}
