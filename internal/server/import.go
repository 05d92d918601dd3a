package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/seyi-ajayi/examscan/constants"
	examscanv1 "github.com/seyi-ajayi/examscan/gen/examscan/v1"
	"github.com/seyi-ajayi/examscan/internal/importer"
)

// ConfigureTest stores a planned test layout on the job. ImportWithTest
// can be called later with the same shape once review finishes.
func (s *ExtractionService) ConfigureTest(ctx context.Context, req *examscanv1.ConfigureTestRequest) (*examscanv1.ConfigureTestResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	if req.GetTitle() == "" {
		return nil, status.Error(codes.InvalidArgument, "title is required")
	}
	if req.GetTestType() != "" {
		if _, err := parseTestType(req.GetTestType()); err != nil {
			return nil, err
		}
	}
	type moduleConfig struct {
		Section          string `json:"section"`
		ModuleSlot       string `json:"module_slot"`
		ModuleDifficulty string `json:"module_difficulty,omitempty"`
		TimeLimitMinutes int    `json:"time_limit_minutes,omitempty"`
		QuestionStart    int    `json:"question_start"`
		QuestionEnd      int    `json:"question_end"`
	}
	cfg := struct {
		Title    string         `json:"title"`
		TestType string         `json:"test_type,omitempty"`
		Modules  []moduleConfig `json:"modules"`
	}{Title: req.GetTitle(), TestType: req.GetTestType()}
	for _, m := range req.GetModules() {
		if _, err := parseSection(m.GetSection()); err != nil {
			return nil, err
		}
		if _, err := parseModuleSlot(m.GetModuleSlot()); err != nil {
			return nil, err
		}
		cfg.Modules = append(cfg.Modules, moduleConfig{
			Section:          m.GetSection(),
			ModuleSlot:       m.GetModuleSlot(),
			ModuleDifficulty: m.GetModuleDifficulty(),
			TimeLimitMinutes: int(m.GetTimeLimitMinutes()),
			QuestionStart:    int(m.GetQuestionStart()),
			QuestionEnd:      int(m.GetQuestionEnd()),
		})
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to encode test config")
	}
	job, err := s.jobs.SetTestConfigs(ctx, jobID, raw)
	if err != nil {
		return nil, toStatus(err, "job not found")
	}
	s.logger.Info("job.test_configured", "job_id", jobID, "modules", len(cfg.Modules))
	return &examscanv1.ConfigureTestResponse{Job: jobToProto(job)}, nil
}

func (s *ExtractionService) ImportToModule(ctx context.Context, req *examscanv1.ImportToModuleRequest) (*examscanv1.ImportToModuleResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	moduleID, err := parseUUID("module_id", req.GetModuleId())
	if err != nil {
		return nil, err
	}
	var only []uuid.UUID
	for _, raw := range req.GetQuestionIds() {
		id, err := parseUUID("question_ids", raw)
		if err != nil {
			return nil, err
		}
		only = append(only, id)
	}
	res, err := s.importer.ImportToModule(ctx, jobID, moduleID, only)
	if err != nil {
		return nil, toStatus(err, "import")
	}
	out := &examscanv1.ImportToModuleResponse{
		Imported:    int32(res.Imported),
		FirstNumber: int32(res.FirstNumber),
		LastNumber:  int32(res.LastNumber),
	}
	for _, id := range res.QuestionIDs {
		out.QuestionIds = append(out.QuestionIds, id.String())
	}
	return out, nil
}

func (s *ExtractionService) ImportWithTest(ctx context.Context, req *examscanv1.ImportWithTestRequest) (*examscanv1.ImportWithTestResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	createdBy, err := parseUUID("created_by", req.GetCreatedBy())
	if err != nil {
		return nil, err
	}

	spec := importer.TestSpec{
		Title:     req.GetTitle(),
		CreatedBy: createdBy,
	}
	if req.GetTestType() != "" {
		spec.TestType, err = parseTestType(req.GetTestType())
		if err != nil {
			return nil, err
		}
	}
	for _, m := range req.GetModules() {
		section, err := parseSection(m.GetSection())
		if err != nil {
			return nil, err
		}
		slot, err := parseModuleSlot(m.GetModuleSlot())
		if err != nil {
			return nil, err
		}
		difficulty := constants.ModuleStandard
		if m.GetModuleDifficulty() != "" {
			difficulty, err = parseModuleDifficulty(m.GetModuleDifficulty())
			if err != nil {
				return nil, err
			}
		}
		spec.Modules = append(spec.Modules, importer.ModuleSpec{
			Section:          section,
			Slot:             slot,
			Difficulty:       difficulty,
			TimeLimitMinutes: int(m.GetTimeLimitMinutes()),
			QuestionStart:    int(m.GetQuestionStart()),
			QuestionEnd:      int(m.GetQuestionEnd()),
		})
	}

	test, res, err := s.importer.ImportWithTest(ctx, jobID, spec)
	if err != nil {
		return nil, toStatus(err, "import")
	}
	return &examscanv1.ImportWithTestResponse{
		TestId:   test.ID.String(),
		Imported: int32(res.Imported),
	}, nil
}

func (s *ExtractionService) ExportReviewSheet(ctx context.Context, req *examscanv1.ExportReviewSheetRequest) (*examscanv1.ExportReviewSheetResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	xlsx, err := s.export.ExportReviewSheetXLSX(ctx, jobID)
	if err != nil {
		return nil, toStatus(err, "export")
	}
	return &examscanv1.ExportReviewSheetResponse{
		Xlsx:     xlsx,
		Filename: fmt.Sprintf("review_%s.xlsx", jobID),
	}, nil
}

func parseTestType(s string) (constants.TestType, error) {
	for _, allowed := range constants.TestTypes {
		if s == allowed {
			return constants.TestType(s), nil
		}
	}
	return "", status.Errorf(codes.InvalidArgument, "invalid test type %q", s)
}

func parseSection(s string) (constants.Section, error) {
	for _, allowed := range constants.Sections {
		if s == allowed {
			return constants.Section(s), nil
		}
	}
	return "", status.Errorf(codes.InvalidArgument, "invalid section %q", s)
}

func parseModuleSlot(s string) (constants.ModuleSlot, error) {
	for _, allowed := range constants.ModuleSlots {
		if s == allowed {
			return constants.ModuleSlot(s), nil
		}
	}
	return "", status.Errorf(codes.InvalidArgument, "invalid module slot %q", s)
}

func parseModuleDifficulty(s string) (constants.ModuleDifficulty, error) {
	for _, allowed := range constants.ModuleDifficulties {
		if s == allowed {
			return constants.ModuleDifficulty(s), nil
		}
	}
	return "", status.Errorf(codes.InvalidArgument, "invalid module difficulty %q", s)
}
