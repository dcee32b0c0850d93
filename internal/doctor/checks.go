package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/openstack-snaps/manila-data/internal/config"
	"github.com/openstack-snaps/manila-data/internal/layout"
	"github.com/openstack-snaps/manila-data/internal/lifecycle"
	"github.com/openstack-snaps/manila-data/internal/messages"
	"github.com/openstack-snaps/manila-data/internal/render"
	"github.com/openstack-snaps/manila-data/internal/snap"
)

var statFunc = os.Stat

var requiredSlots = map[string]bool{"common": true, "data": true, "snap": true}

// CheckPaths verifies that the required snap roots are set and exist.
// Optional roots are reported only when set.
func CheckPaths(paths snap.Paths) []Result {
	var results []Result
	for _, slot := range paths.Slots() {
		if slot.Path == "" {
			if requiredSlots[slot.Name] {
				results = append(results, Result{
					Status:         StatusFail,
					CheckName:      messages.DoctorCheckNamePaths,
					Message:        fmt.Sprintf(messages.DoctorPathUnsetFmt, slot.Name),
					Recommendation: messages.DoctorPathUnsetRecommend,
				})
			}
			continue
		}
		if _, err := statFunc(slot.Path); err != nil {
			status := StatusWarn
			if requiredSlots[slot.Name] {
				status = StatusFail
			}
			results = append(results, Result{
				Status:         status,
				CheckName:      messages.DoctorCheckNamePaths,
				Message:        fmt.Sprintf(messages.DoctorPathMissingFmt, slot.Name, slot.Path),
				Recommendation: messages.DoctorPathMissingRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNamePaths,
			Message:   fmt.Sprintf(messages.DoctorPathOKFmt, slot.Name, slot.Path),
		})
	}
	return results
}

// CheckDirectories verifies that every declared directory exists with its declared mode.
func CheckDirectories(roots layout.Roots, dirs []layout.Directory) []Result {
	var results []Result
	for _, dir := range dirs {
		path, err := roots.Resolve(dir.Location, dir.Path)
		if err != nil {
			results = append(results, Result{
				Status:    StatusFail,
				CheckName: messages.DoctorCheckNameDirectories,
				Message:   fmt.Sprintf(messages.DoctorDirResolveFailedFmt, dir.Path, err),
			})
			continue
		}
		info, err := statFunc(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameDirectories,
				Message:        fmt.Sprintf(messages.DoctorMissingDirFmt, path),
				Recommendation: messages.DoctorMissingDirRecommend,
			})
		case err != nil:
			results = append(results, Result{
				Status:    StatusFail,
				CheckName: messages.DoctorCheckNameDirectories,
				Message:   fmt.Sprintf(messages.DoctorDirStatFailedFmt, path, err),
			})
		case !info.IsDir():
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameDirectories,
				Message:        fmt.Sprintf(messages.DoctorPathNotDirFmt, path),
				Recommendation: messages.DoctorPathNotDirRecommend,
			})
		case info.Mode().Perm() != dir.Mode.Perm():
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameDirectories,
				Message:        fmt.Sprintf(messages.DoctorDirModeFmt, path, uint32(info.Mode().Perm()), uint32(dir.Mode.Perm())),
				Recommendation: messages.DoctorDirModeRecommend,
			})
		default:
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameDirectories,
				Message:   fmt.Sprintf(messages.DoctorDirExistsFmt, path),
			})
		}
	}
	return results
}

// CheckConfig loads and validates the configuration through m.
// It reports whether the configuration is usable for template checks.
func CheckConfig(ctx context.Context, m *lifecycle.Manager) ([]Result, bool) {
	_, err := m.Config(ctx)
	if err == nil {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   messages.DoctorConfigLoaded,
		}}, true
	}

	var validation *config.ValidationError
	if errors.As(err, &validation) {
		lines := make([]string, 0, len(validation.Fields))
		for _, field := range validation.Fields {
			lines = append(lines, fmt.Sprintf(messages.ConfigValidationFieldFmt, field.Field, field.Description))
		}
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        messages.DoctorConfigInvalid,
			Recommendation: messages.DoctorConfigInvalidRecommend,
			Detail:         strings.Join(lines, "\n"),
		}}, false
	}
	return []Result{{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameConfig,
		Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
		Recommendation: messages.DoctorConfigLoadRecommend,
	}}, false
}

// CheckTemplates compares each rendered file with what the current
// configuration would produce. maxLines caps each diff; zero means no cap.
func CheckTemplates(ctx context.Context, m *lifecycle.Manager, maxLines int) []Result {
	drifts, err := m.Drift(ctx, maxLines)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTemplates,
			Message:        fmt.Sprintf(messages.DoctorTemplateFailedFmt, err),
			Recommendation: messages.DoctorTemplateFailedRecommend,
		}}
	}
	results := make([]Result, 0, len(drifts))
	for _, drift := range drifts {
		switch drift.State {
		case render.DriftMissing:
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameTemplates,
				Message:        fmt.Sprintf(messages.DoctorTemplateMissingFmt, drift.Path),
				Recommendation: messages.DoctorTemplateMissingRecommend,
			})
		case render.DriftChanged:
			detail := drift.UnifiedDiff
			if drift.Truncated {
				detail = strings.TrimRight(detail, "\n") + "\n" + fmt.Sprintf(messages.DoctorTemplateDiffTruncatedFmt, maxLines)
			}
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameTemplates,
				Message:        fmt.Sprintf(messages.DoctorTemplateChangedFmt, drift.Path),
				Recommendation: messages.DoctorTemplateChangedRecommend,
				Detail:         strings.TrimRight(detail, "\n"),
			})
		default:
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameTemplates,
				Message:   fmt.Sprintf(messages.DoctorTemplateCurrentFmt, drift.Path),
			})
		}
	}
	return results
}

// Run executes every check in order. Template checks run only when the
// configuration is valid.
func Run(ctx context.Context, s *snap.Snap, data lifecycle.ServiceData, m *lifecycle.Manager, maxLines int) []Result {
	var results []Result
	results = append(results, CheckPaths(s.Paths)...)
	results = append(results, CheckDirectories(s.Paths.Roots(), data.Directories())...)
	configResults, ok := CheckConfig(ctx, m)
	results = append(results, configResults...)
	if !ok {
		results = append(results, Result{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameTemplates,
			Message:   messages.DoctorTemplateSkipped,
		})
		return results
	}
	return append(results, CheckTemplates(ctx, m, maxLines)...)
}
