package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/config"
	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/types"
)

// EvaluationResult is the structured output of one generator call: six
// narrative dimensions plus the two rollup counters.
type EvaluationResult struct {
	Completed          string
	Agile              string
	Accuracy           string
	Context            string
	Pronunciation      string
	Review             string
	CorrectResponseCnt int
	TimeoutResponseCnt int
	Raw                json.RawMessage
}

// EvaluationGenerator maps a scenario snapshot plus the recorded answers to a
// structured evaluation. Backed by a remote language model; calls take seconds
// and are bounded by the configured timeout.
type EvaluationGenerator interface {
	Evaluate(ctx context.Context, scenario []*types.Scenario, answers []*types.Answer) (*EvaluationResult, error)
}

const evaluationSystemPrompt = "Scenario metadata is entered as JSON input for the first term. " +
	"The metadata contains the scenario title and the number of questions. " +
	"After that, the answer sheet is entered. You evaluate the given learning outcomes in detail. " +
	"Please answer each question in detail in a narrative form. " +
	"If an incorrect answer is found, please explain the incorrect answer by specifying the scenario and the correct answer. " +
	"The output is Korean by using natural polite speech suitable for everyday life."

const evaluationSchema = `{
  "type": "object",
  "properties": {
    "completed": {
      "description": "[MAX_LENGTH=100] Did the learner complete all expected questions without timeout? State the expected answer count from the scenario info and the actual count from the answer sheet.",
      "type": "string"
    },
    "agile": {
      "description": "[MAX_LENGTH=100] Did the learner show a fast response speed?",
      "type": "string"
    },
    "accuracy": {
      "description": "[MAX_LENGTH=100] Did the learner answer with the intended answer? How many correct answers? Specify any wrong answer.",
      "type": "string"
    },
    "context": {
      "description": "[MAX_LENGTH=100] Did the learner express emotions appropriately for each situation? Specify any answer that reads awkwardly for its situation.",
      "type": "string"
    },
    "pronunciation": {
      "description": "[MAX_LENGTH=100] For spoken responses, specify any answer recognized as mispronounced or out of place.",
      "type": "string"
    },
    "review": {
      "description": "[MAX_LENGTH=300] A general review of this session and suggestions for future learning directions.",
      "type": "string"
    },
    "correct_response_cnt": {
      "description": "The number of correct answers.",
      "type": "integer"
    },
    "timeout_response_cnt": {
      "description": "The number of timed-out or no-reply answers among the recorded responses.",
      "type": "integer"
    }
  },
  "required": ["completed", "agile", "accuracy", "context", "pronunciation", "review", "correct_response_cnt", "timeout_response_cnt"],
  "additionalProperties": false
}`

type openAIEvaluator struct {
	log     *logger.Logger
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIEvaluator(log *logger.Logger, cfg config.OpenAI) (EvaluationGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY")
	}
	serviceLog := log.With("service", "OpenAIEvaluator")
	return &openAIEvaluator{
		log:     serviceLog,
		client:  openai.NewClient(cfg.APIKey),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

func (e *openAIEvaluator) Evaluate(ctx context.Context, scenario []*types.Scenario, answers []*types.Answer) (*EvaluationResult, error) {
	scenarioJSON, err := json.Marshal(scenario)
	if err != nil {
		return nil, apierr.Generator(fmt.Errorf("failed to encode scenario records: %w", err))
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, apierr.Generator(fmt.Errorf("failed to encode answer records: %w", err))
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: evaluationSystemPrompt},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "[scenario info]:\n" + string(scenarioJSON) + "\n[answer sheet]:\n" + string(answersJSON),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "learning_evaluation",
				Schema: json.RawMessage(evaluationSchema),
				Strict: true,
			},
		},
	}

	resp, err := e.client.CreateChatCompletion(callCtx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apierr.Generator(fmt.Errorf("evaluation generator timed out: %w", err))
		}
		return nil, apierr.Generator(fmt.Errorf("evaluation generator call failed: %w", err))
	}
	if len(resp.Choices) == 0 {
		return nil, apierr.Generator(fmt.Errorf("evaluation generator returned no choices"))
	}

	result, err := parseEvaluation([]byte(resp.Choices[0].Message.Content))
	if err != nil {
		e.log.Warn("Evaluation response failed to parse", "error", err)
		return nil, err
	}
	return result, nil
}

// parseEvaluation decodes the generator response and rejects anything that
// does not match the expected schema.
func parseEvaluation(raw []byte) (*EvaluationResult, error) {
	var fields struct {
		Completed          *string `json:"completed"`
		Agile              *string `json:"agile"`
		Accuracy           *string `json:"accuracy"`
		Context            *string `json:"context"`
		Pronunciation      *string `json:"pronunciation"`
		Review             *string `json:"review"`
		CorrectResponseCnt *int    `json:"correct_response_cnt"`
		TimeoutResponseCnt *int    `json:"timeout_response_cnt"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, apierr.Format(fmt.Errorf("evaluation response is not valid JSON: %w", err))
	}

	missing := ""
	switch {
	case fields.Completed == nil:
		missing = "completed"
	case fields.Agile == nil:
		missing = "agile"
	case fields.Accuracy == nil:
		missing = "accuracy"
	case fields.Context == nil:
		missing = "context"
	case fields.Pronunciation == nil:
		missing = "pronunciation"
	case fields.Review == nil:
		missing = "review"
	case fields.CorrectResponseCnt == nil:
		missing = "correct_response_cnt"
	case fields.TimeoutResponseCnt == nil:
		missing = "timeout_response_cnt"
	}
	if missing != "" {
		return nil, apierr.Format(fmt.Errorf("evaluation response missing field %q", missing))
	}
	if *fields.CorrectResponseCnt < 0 || *fields.TimeoutResponseCnt < 0 {
		return nil, apierr.Format(fmt.Errorf("evaluation response has negative counters"))
	}

	return &EvaluationResult{
		Completed:          *fields.Completed,
		Agile:              *fields.Agile,
		Accuracy:           *fields.Accuracy,
		Context:            *fields.Context,
		Pronunciation:      *fields.Pronunciation,
		Review:             *fields.Review,
		CorrectResponseCnt: *fields.CorrectResponseCnt,
		TimeoutResponseCnt: *fields.TimeoutResponseCnt,
		Raw:                json.RawMessage(raw),
	}, nil
}
