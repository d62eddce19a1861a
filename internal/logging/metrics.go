package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"palga/internal/eval"
	"palga/internal/ga"
)

// Logger writes per-generation run files and mirrors summaries to slog
type Logger struct {
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	log         *slog.Logger
	initialized bool
}

// NewLogger creates a new logger
func NewLogger(csvPath, jsonPath string, log *slog.Logger) (*Logger, error) {
	if log == nil {
		log = slog.Default()
	}
	l := &Logger{
		csvPath:  csvPath,
		jsonPath: jsonPath,
		log:      log,
	}

	// Ensure directories exist
	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}

	return l, nil
}

// Init opens the log files and writes the CSV header
func (l *Logger) Init() error {
	var err error

	l.csvFile, err = os.Create(l.csvPath)
	if err != nil {
		return err
	}
	l.csvWriter = csv.NewWriter(l.csvFile)

	header := []string{
		"generation", "best_fitness", "mean_fitness", "worst_fitness", "std_fitness",
		"best_length", "best",
	}
	if err := l.csvWriter.Write(header); err != nil {
		return err
	}

	l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	l.initialized = true
	return nil
}

// Close flushes and closes all log files
func (l *Logger) Close() error {
	var firstErr error
	if l.csvWriter != nil {
		l.csvWriter.Flush()
		firstErr = l.csvWriter.Error()
	}
	for _, f := range []*os.File{l.csvFile, l.jsonFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// GenerationSummary holds per-generation statistics
type GenerationSummary struct {
	Generation   int      `json:"generation"`
	BestFitness  int      `json:"best_fitness"`
	MeanFitness  float64  `json:"mean_fitness"`
	WorstFitness int      `json:"worst_fitness"`
	StdFitness   float64  `json:"std_fitness"`
	BestLength   int      `json:"best_length"`
	Best         string   `json:"best"`
	Score        ga.Score `json:"score"`
}

// NewGenerationSummary builds the summary for a ranked population
func NewGenerationSummary(gen int, pop ga.Population, stats eval.Summary, opts ga.Options) GenerationSummary {
	s := GenerationSummary{
		Generation:   gen,
		BestFitness:  stats.Best,
		MeanFitness:  stats.Mean,
		WorstFitness: stats.Worst,
		StdFitness:   stats.Std,
	}
	if best := pop.Best(opts); best != nil {
		s.BestLength = best.Len()
		s.Best = best.String()
		s.Score = best.Breakdown(opts)
	}
	return s
}

// LogGeneration appends a summary to the CSV and JSONL files
func (l *Logger) LogGeneration(s GenerationSummary) error {
	if !l.initialized {
		return nil
	}

	row := []string{
		strconv.Itoa(s.Generation),
		strconv.Itoa(s.BestFitness),
		fmt.Sprintf("%.2f", s.MeanFitness),
		strconv.Itoa(s.WorstFitness),
		fmt.Sprintf("%.2f", s.StdFitness),
		strconv.Itoa(s.BestLength),
		s.Best,
	}
	if err := l.csvWriter.Write(row); err != nil {
		return err
	}
	l.csvWriter.Flush()
	if err := l.csvWriter.Error(); err != nil {
		return err
	}

	jsonLine, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if _, err := l.jsonFile.Write(append(jsonLine, '\n')); err != nil {
		return err
	}

	l.log.Info("generation",
		"gen", s.Generation,
		"best", s.BestFitness,
		"mean", s.MeanFitness,
		"worst", s.WorstFitness,
		"chromosome", s.Best)
	return nil
}

// LogTopK writes the first k individuals of a ranked population
func LogTopK(w io.Writer, pop ga.Population, k int, opts ga.Options) {
	if k > len(pop) {
		k = len(pop)
	}
	fmt.Fprintf(w, "  Top %d individuals:\n", k)
	for i := 0; i < k; i++ {
		ind := pop[i]
		sc := ind.Breakdown(opts)
		fmt.Fprintf(w, "    #%d: Fitness=%d (mirror=%d adjacency=%d) Length=%d %s\n",
			i+1, sc.Total, sc.Mirror, sc.Adjacency, ind.Len(), ind)
	}
}

// Champion is the on-disk format of a saved best individual
type Champion struct {
	Generation int      `json:"generation"`
	Fitness    int      `json:"fitness"`
	Score      ga.Score `json:"score"`
	Alphabet   int      `json:"alphabet"`
	Chromosome string   `json:"chromosome"`
}

// SaveChampion saves the individual to a JSON file
func SaveChampion(path string, ind *ga.Individual, gen, alphabet int, opts ga.Options) error {
	if ind == nil {
		return fmt.Errorf("%w: nil champion", ga.ErrInvalidArgument)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	sc := ind.Breakdown(opts)
	data := Champion{
		Generation: gen,
		Fitness:    sc.Total,
		Score:      sc,
		Alphabet:   alphabet,
		Chromosome: ind.String(),
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonData, 0644)
}

// LoadChampion loads a champion file and rebuilds its individual
func LoadChampion(path string) (*Champion, *ga.Individual, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var saved Champion
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, nil, fmt.Errorf("decode champion %s: %w", path, err)
	}

	c, err := ga.ParseChromosome(saved.Chromosome, saved.Alphabet)
	if err != nil {
		return nil, nil, fmt.Errorf("champion %s: %w", path, err)
	}
	return &saved, &ga.Individual{Chromosome: c}, nil
}
