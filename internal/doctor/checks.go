// Package doctor implements health checks for a Code Zen installation.
package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/code-zen/zen/internal/config"
	"github.com/code-zen/zen/internal/fetch"
	"github.com/code-zen/zen/internal/install"
	"github.com/code-zen/zen/internal/messages"
)

// Status classifies a check outcome.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusWarn means the check found something optional missing.
	StatusWarn
	// StatusFail means the check found a broken installation.
	StatusFail
)

// Result is a single check outcome.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

var lookPathFunc = exec.LookPath

// CheckTool verifies the git client is available on PATH.
func CheckTool() Result {
	path, err := lookPathFunc(fetch.GitTool)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTool,
			Message:        fmt.Sprintf(messages.DoctorToolMissingFmt, fetch.GitTool),
			Recommendation: messages.DoctorToolMissingRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameTool,
		Message:   fmt.Sprintf(messages.DoctorToolFoundFmt, fetch.GitTool, path),
	}
}

// CheckStructure verifies the installed bundle directories exist. Required
// subtrees fail when missing; the optional commands/agents directories only
// warn.
func CheckStructure(paths config.Paths, layout install.Layout) []Result {
	var results []Result

	required := []string{paths.BundleDir}
	for _, subtree := range layout.Subtrees {
		required = append(required, filepath.Join(paths.BundleDir, filepath.Base(subtree)))
	}
	for _, dir := range required {
		results = append(results, checkDir(dir, paths.ProfileDir))
	}

	optional := []string{}
	if layout.CommandsDir != "" {
		optional = append(optional, paths.CommandsDir)
	}
	if layout.AgentsDir != "" {
		optional = append(optional, paths.AgentsDir)
	}
	for _, dir := range optional {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameStructure,
				Message:        fmt.Sprintf(messages.DoctorOptionalMissingFmt, rel(dir, paths.ProfileDir)),
				Recommendation: messages.DoctorOptionalRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameStructure,
			Message:   fmt.Sprintf(messages.DoctorDirExistsFmt, rel(dir, paths.ProfileDir)),
		})
	}
	return results
}

// CheckRegistration verifies the configuration file references the installed
// bundle.
func CheckRegistration(paths config.Paths, sentinel string) Result {
	data, err := os.ReadFile(paths.ClaudeMD)
	if os.IsNotExist(err) {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameRegistration,
			Message:        fmt.Sprintf(messages.DoctorConfigFileMissingFmt, paths.ClaudeMD),
			Recommendation: messages.DoctorNotRegisteredRecommend,
		}
	}
	if err != nil {
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameRegistration,
			Message:   fmt.Sprintf(messages.DoctorReadFailedFmt, paths.ClaudeMD, err),
		}
	}
	if !strings.Contains(string(data), sentinel) {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameRegistration,
			Message:        fmt.Sprintf(messages.DoctorNotRegisteredFmt, paths.ClaudeMD, sentinel),
			Recommendation: messages.DoctorNotRegisteredRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameRegistration,
		Message:   fmt.Sprintf(messages.DoctorRegisteredFmt, paths.ClaudeMD, sentinel),
	}
}

func checkDir(dir string, base string) Result {
	info, err := os.Stat(dir)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameStructure,
			Message:        fmt.Sprintf(messages.DoctorMissingDirFmt, rel(dir, base)),
			Recommendation: messages.DoctorMissingDirRecommend,
		}
	}
	if !info.IsDir() {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameStructure,
			Message:        fmt.Sprintf(messages.DoctorPathNotDirFmt, rel(dir, base)),
			Recommendation: messages.DoctorPathNotDirRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameStructure,
		Message:   fmt.Sprintf(messages.DoctorDirExistsFmt, rel(dir, base)),
	}
}

func rel(path string, base string) string {
	if base == "" {
		return path
	}
	if candidate, err := filepath.Rel(base, path); err == nil {
		return candidate
	}
	return path
}
