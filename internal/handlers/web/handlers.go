package web

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dicestats/internal/common/uuid"
	"github.com/KirkDiggler/dicestats/internal/models"
	"github.com/KirkDiggler/dicestats/internal/plot"
	"github.com/KirkDiggler/dicestats/internal/services/messaging"
	"github.com/KirkDiggler/dicestats/internal/services/simulation"
)

// Form and query parameter names
const (
	paramRolls = "rolls"
	paramDice  = "dice"
	paramBias  = "bias"
	paramLang  = "lang"
)

type limits struct {
	MinRolls int
	MaxRolls int
	MinBias  float64
	MaxBias  float64
	BiasStep float64
}

type languageOption struct {
	Tag      string
	Name     string
	Selected bool
}

type faceView struct {
	Face        int
	Probability string
}

type resultView struct {
	RunID       string
	Faces       []faceView
	Chart       template.HTML
	Empirical   []messaging.Metric
	Theoretical []messaging.Metric
	Summary     string
	Comment     string
	Clamped     bool
	Duration    string
}

type pageView struct {
	Labels      *messaging.Labels
	Theory      *messaging.GetTheoryMessageOutput
	Params      models.Parameters
	DiceOptions []int
	Limits      limits
	Languages   []languageOption
	Result      *resultView
	Error       string
}

func (s *Server) handleIndex(c *gin.Context) {
	tag := s.language(c)

	view, err := s.page(c, tag, models.DefaultParameters())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", view)
}

func (s *Server) handleSimulate(c *gin.Context) {
	tag := s.language(c)

	params, parseErr := parseParameters(c)
	if parseErr != nil {
		view, err := s.page(c, tag, params)
		if err != nil {
			s.fail(c, err)
			return
		}
		view.Error = parseErr.Error()
		c.HTML(http.StatusBadRequest, "index.html", view)
		return
	}

	output, err := s.simulation.Simulate(c.Request.Context(), &simulation.SimulateInput{
		RollCount: params.RollCount,
		DiceCount: params.DiceCount,
		BiasLevel: params.BiasLevel,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	run := output.Run

	// labels depend on the dice count actually used
	view, err := s.page(c, tag, run.Parameters)
	if err != nil {
		s.fail(c, err)
		return
	}

	result, err := s.messaging.GetResultMessage(c.Request.Context(), &messaging.GetResultMessageInput{
		Language: tag,
		Run:      run,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	chart := plot.SVG(run.Plot, plot.Labels{
		AxisX:        view.Labels.AxisX,
		AxisY:        view.Labels.AxisY,
		LegendSample: view.Labels.LegendExperiment,
		LegendTheory: view.Labels.LegendTheory,
	}, plot.SVGOptions{})

	faces := make([]faceView, 0, models.Faces)
	for face := 1; face <= models.Faces; face++ {
		faces = append(faces, faceView{
			Face:        face,
			Probability: messaging.FormatPercent(tag, run.Probabilities.Of(face)),
		})
	}

	view.Result = &resultView{
		RunID: uuid.Short(run.ID),
		Faces: faces,
		// SVG is generated from numbers and escaped labels only
		Chart:       template.HTML(chart),
		Empirical:   result.Empirical,
		Theoretical: result.Theoretical,
		Summary:     result.Summary,
		Comment:     result.Comment,
		Clamped:     output.Clamped,
		Duration:    run.Duration.Round(100 * time.Microsecond).String(),
	}

	c.HTML(http.StatusOK, "index.html", view)
}

func (s *Server) handleAPISimulate(c *gin.Context) {
	params, err := parseParameters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := s.simulation.Simulate(c.Request.Context(), &simulation.SimulateInput{
		RollCount: params.RollCount,
		DiceCount: params.DiceCount,
		BiasLevel: params.BiasLevel,
	})
	if err != nil {
		s.logger.Error("simulation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	run := output.Run
	c.JSON(http.StatusOK, gin.H{
		"run_id":        run.ID,
		"started_at":    run.StartedAt,
		"duration":      run.Duration.String(),
		"parameters":    run.Parameters,
		"clamped":       output.Clamped,
		"probabilities": run.Probabilities,
		"empirical":     run.Empirical,
		"theoretical":   run.Theoretical,
		"plot":          run.Plot,
	})
}

func (s *Server) handleAPITheory(c *gin.Context) {
	params, err := parseParameters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := s.simulation.GetTheory(c.Request.Context(), &simulation.GetTheoryInput{
		DiceCount: params.DiceCount,
		BiasLevel: params.BiasLevel,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dice_count":    output.DiceCount,
		"bias_level":    output.BiasLevel,
		"probabilities": output.Probabilities,
		"theoretical":   output.Theoretical,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// page assembles everything the template needs apart from the result
func (s *Server) page(c *gin.Context, tag language.Tag, params models.Parameters) (*pageView, error) {
	labels, err := s.messaging.GetLabels(c.Request.Context(), &messaging.GetLabelsInput{
		Language:  tag,
		DiceCount: params.DiceCount,
	})
	if err != nil {
		return nil, err
	}

	theory, err := s.messaging.GetTheoryMessage(c.Request.Context(), &messaging.GetTheoryMessageInput{
		Language: tag,
	})
	if err != nil {
		return nil, err
	}

	dice := make([]int, 0, models.MaxDiceCount)
	for n := models.MinDiceCount; n <= models.MaxDiceCount; n++ {
		dice = append(dice, n)
	}

	return &pageView{
		Labels:      labels.Labels,
		Theory:      theory,
		Params:      params,
		DiceOptions: dice,
		Limits: limits{
			MinRolls: models.MinRollCount,
			MaxRolls: models.MaxRollCount,
			MinBias:  models.MinBiasLevel,
			MaxBias:  models.MaxBiasLevel,
			BiasStep: models.BiasStep,
		},
		Languages: languageOptions(tag),
	}, nil
}

func (s *Server) fail(c *gin.Context, err error) {
	s.logger.Error("dashboard request failed", "path", c.FullPath(), "error", err)
	c.String(http.StatusInternalServerError, "internal error")
}

func (s *Server) language(c *gin.Context) language.Tag {
	return messaging.ResolveTag(formValue(c, paramLang), c.GetHeader("Accept-Language"), s.config.DefaultLanguage)
}

func languageOptions(current language.Tag) []languageOption {
	names := map[string]string{"en": "English", "ru": "Русский"}

	var out []languageOption
	for _, tag := range messaging.Supported() {
		out = append(out, languageOption{
			Tag:      tag.String(),
			Name:     names[tag.String()],
			Selected: tag == current,
		})
	}
	return out
}

// parseParameters reads rolls, dice and bias from the form or the query
// string. Missing values take the defaults; range checks are left to the
// simulation, which clamps.
func parseParameters(c *gin.Context) (models.Parameters, error) {
	params := models.DefaultParameters()

	if raw := formValue(c, paramRolls); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return params, fmt.Errorf("invalid %s %q", paramRolls, raw)
		}
		params.RollCount = v
	}

	if raw := formValue(c, paramDice); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return params, fmt.Errorf("invalid %s %q", paramDice, raw)
		}
		params.DiceCount = v
	}

	if raw := formValue(c, paramBias); raw != "" {
		v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
		if err != nil {
			return params, fmt.Errorf("invalid %s %q", paramBias, raw)
		}
		params.BiasLevel = v
	}

	return params, nil
}

func formValue(c *gin.Context, key string) string {
	if v, ok := c.GetPostForm(key); ok {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(c.Query(key))
}
