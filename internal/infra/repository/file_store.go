package repository

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"

	repo "app/internal/repository"
)

// fileStore はキーごとに1つのJSONファイルを持つ簡易キーバリュー置き場。
// ブラウザのlocalStorage相当で、保存は毎回全量書き換え。
type fileStore struct {
	dir string
}

func newFileStore(dir string) *fileStore {
	return &fileStore{dir: dir}
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// read はキーのJSONを読み込む。
// ファイルが無い・読めない・JSONが壊れている場合はすべて repo.ErrNotFound に潰す
// （呼び出し側はデフォルトにフォールバックするだけなので区別しない）。
func (s *fileStore) read(key string, v any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return repo.ErrNotFound
	}
	if err := json.Unmarshal(data, v); err != nil {
		return repo.ErrNotFound
	}
	return nil
}

// write は全量を書き換える。tmpに書いてからrenameで差し替える。
func (s *fileStore) write(key string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path(key))
}

func (s *fileStore) linesPath(key string) string {
	return filepath.Join(s.dir, key+".jsonl")
}

// appendLine はJSONLファイルに1行追記する。
func (s *fileStore) appendLine(key string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.linesPath(key), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

// readLines はJSONLを1行ずつ読み込む。壊れた行は読み飛ばす。
func (s *fileStore) readLines(key string, each func(raw json.RawMessage)) error {
	f, err := os.Open(s.linesPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			continue
		}
		raw := make(json.RawMessage, len(line))
		copy(raw, line)
		each(raw)
	}
	return sc.Err()
}
