package data

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fuzzyrec-tf/internal/genre"
	"fuzzyrec-tf/internal/models"
)

// Report acumula el resultado de una carga: cuánto se parseó y qué líneas se
// saltaron. Una línea malformada nunca aborta la carga completa.
type Report struct {
	Parsed  int
	Skipped int
	Errors  []error
}

func (r *Report) skip(line int, format string, args ...any) {
	r.Skipped++
	// guardamos solo una muestra acotada de errores
	if len(r.Errors) < 20 {
		r.Errors = append(r.Errors, fmt.Errorf("línea %d: "+format, append([]any{line}, args...)...))
	}
}

// Campos fijos de u.item antes de los flags de género:
// id | título | fecha | fecha video | url imdb | unknown | 18 géneros
const itemFixedFields = 5

// LoadMovies parsea u.item de MovieLens 100K (separado por '|', latin-1).
// El flag 'unknown' (primer género) se descarta: el vocabulario del sistema
// son los 18 géneros reales.
func LoadMovies(path string, vocab []string) ([]models.MovieDoc, *Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	g := len(vocab)
	report := &Report{}
	var out []models.MovieDoc

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := latin1ToUTF8(sc.Bytes())
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != itemFixedFields+1+g {
			report.skip(lineNo, "se esperaban %d campos, hay %d", itemFixedFields+1+g, len(fields))
			continue
		}

		movieID, err := strconv.Atoi(fields[0])
		if err != nil {
			report.skip(lineNo, "movieId inválido %q", fields[0])
			continue
		}

		binary := make([]int, g)
		var genres []string
		bad := false
		// fields[itemFixedFields] es el flag 'unknown'; los 18 reales siguen
		for i := 0; i < g; i++ {
			v, err := strconv.Atoi(fields[itemFixedFields+1+i])
			if err != nil || (v != 0 && v != 1) {
				report.skip(lineNo, "flag de género inválido %q", fields[itemFixedFields+1+i])
				bad = true
				break
			}
			binary[i] = v
			if v == 1 {
				genres = append(genres, vocab[i])
			}
		}
		if bad {
			continue
		}

		m := models.MovieDoc{
			MovieID: movieID,
			Title:   fields[1],
			Genres:  genres,
			Binary:  binary,
		}
		if y := releaseYear(fields[2]); y > 0 {
			m.Year = &y
		}

		out = append(out, m)
		report.Parsed++
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return out, report, nil
}

// LoadRatings parsea u.data (tab-separado: userId, movieId, rating, timestamp).
func LoadRatings(path string) ([]models.RatingDoc, *Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	report := &Report{}
	var out []models.RatingDoc

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 4 {
			report.skip(lineNo, "se esperaban 4 campos, hay %d", len(fields))
			continue
		}

		userID, err1 := strconv.Atoi(fields[0])
		movieID, err2 := strconv.Atoi(fields[1])
		rating, err3 := strconv.ParseFloat(fields[2], 64)
		ts, err4 := strconv.ParseInt(fields[3], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			report.skip(lineNo, "campos no numéricos: %q", line)
			continue
		}
		if rating < 1 || rating > 5 {
			report.skip(lineNo, "rating %.1f fuera de [1,5]", rating)
			continue
		}

		out = append(out, models.RatingDoc{
			UserID:    userID,
			MovieID:   movieID,
			Rating:    rating,
			Timestamp: ts,
		})
		report.Parsed++
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return out, report, nil
}

// MovieLensVocab es el vocabulario que esperan los archivos de MovieLens 100K.
func MovieLensVocab() []string {
	return genre.MovieLensGenres
}

// latin1ToUTF8: u.item viene en latin-1; byte a rune es la conversión exacta.
func latin1ToUTF8(b []byte) string {
	ascii := true
	for _, c := range b {
		if c >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b)
	}
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

// releaseYear extrae el año de fechas tipo "01-Jan-1995". 0 si no hay.
func releaseYear(s string) int {
	s = strings.TrimSpace(s)
	if len(s) < 4 {
		return 0
	}
	y, err := strconv.Atoi(s[len(s)-4:])
	if err != nil {
		return 0
	}
	return y
}
