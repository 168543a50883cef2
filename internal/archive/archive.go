// Package archive stores finished games as Parquet rows.
package archive

import (
	"fmt"
	"strings"
	"time"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"

	"janggi/internal/janggi"
)

type Record struct {
	GameID        string `parquet:"name=game_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Result        string `parquet:"name=result, type=BYTE_ARRAY, convertedtype=UTF8"`
	MoveCount     int32  `parquet:"name=move_count, type=INT32"`
	Moves         string `parquet:"name=moves, type=BYTE_ARRAY, convertedtype=UTF8"`
	FinalPosition string `parquet:"name=final_position, type=BYTE_ARRAY, convertedtype=UTF8"`
	FinishedAt    int64  `parquet:"name=finished_at, type=INT64"`
}

// NewRecord captures g's result, its move list as space-separated "e9e8"
// tokens, and the final position notation. finishedAt is kept as Unix
// milliseconds.
func NewRecord(id string, g *janggi.Game, finishedAt time.Time) Record {
	history := g.History()
	moves := make([]string, len(history))
	for i, mv := range history {
		moves[i] = mv.String()
	}
	return Record{
		GameID:        id,
		Result:        g.Outcome().String(),
		MoveCount:     int32(len(history)),
		Moves:         strings.Join(moves, " "),
		FinalPosition: g.Encode(),
		FinishedAt:    finishedAt.UnixMilli(),
	}
}

// Replay plays the record's moves from the initial position.
func (r Record) Replay() (*janggi.Game, error) {
	g := janggi.NewGame()
	for i, tok := range strings.Fields(r.Moves) {
		mv, err := janggi.ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("game %s ply %d: %w", r.GameID, i+1, err)
		}
		if err := g.ApplyMove(mv.From, mv.To); err != nil {
			return nil, fmt.Errorf("game %s ply %d %s: %w", r.GameID, i+1, mv, err)
		}
	}
	return g, nil
}

func Write(path string, records []Record, parallel int64) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(Record), parallel)
	if err != nil {
		return err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, record := range records {
		if err := parquetWriter.Write(record); err != nil {
			return err
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return err
	}
	return fileWriter.Close()
}

func Read(path string, parallel int64) ([]Record, error) {
	fileReader, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, err
	}
	defer fileReader.Close()

	parquetReader, err := reader.NewParquetReader(fileReader, new(Record), parallel)
	if err != nil {
		return nil, err
	}
	defer parquetReader.ReadStop()

	num := int(parquetReader.GetNumRows())
	records := make([]Record, 0, num)
	batchSize := 1024
	for offset := 0; offset < num; offset += batchSize {
		remain := num - offset
		if remain < batchSize {
			batchSize = remain
		}
		batch := make([]Record, batchSize)
		if err := parquetReader.Read(&batch); err != nil {
			return nil, err
		}
		records = append(records, batch...)
	}
	return records, nil
}
