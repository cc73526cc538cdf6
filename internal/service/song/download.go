package song

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/oshokin/id3v2/v2"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/ekazantsev/suno-grabber/internal/constants"
	"github.com/ekazantsev/suno-grabber/internal/logger"
	"github.com/ekazantsev/suno-grabber/internal/utils"
)

const (
	// File options for overwriting an existing file.
	overwriteFileOptions = os.O_CREATE | os.O_TRUNC | os.O_WRONLY

	// File options for creating a new file (fails if the file already exists).
	createNewFileOptions = os.O_CREATE | os.O_EXCL | os.O_WRONLY

	// songArtistTag is the artist name embedded into downloaded files.
	songArtistTag = "Suno AI"
)

// DownloadSongs saves the audio of finished songs to the output directory
// and embeds their metadata. Songs without an audio URL are skipped with a
// warning; a failed song does not stop the rest of the batch.
func (s *ServiceImpl) DownloadSongs(ctx context.Context, songs []*Song) error {
	if err := os.MkdirAll(s.cfg.OutputPath, constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create output path: %w", err)
	}

	songsCount := len(songs)

	for index, item := range songs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if item.AudioURL == "" {
			logger.Warnf(ctx, "Song '%s' (%s) has no audio yet, skipping", item.Title, item.ID)

			continue
		}

		logger.Infof(ctx, "Downloading song: %s (%d / %d)", item.Title, index+1, songsCount)

		if err := s.downloadSong(ctx, item); err != nil {
			logger.Errorf(ctx, "Failed to download song '%s': %v", item.Title, err)
		}
	}

	return nil
}

func (s *ServiceImpl) downloadSong(ctx context.Context, item *Song) error {
	songPath := filepath.Join(s.cfg.OutputPath, s.songFilename(item))

	if !s.cfg.ReplaceFiles {
		exists, err := utils.IsFileExist(songPath)
		if err != nil {
			return err
		}

		if exists {
			logger.Infof(ctx, "File '%s' already exists, skipping download", songPath)

			return nil
		}
	}

	tempPath, err := s.saveSongToTempFile(ctx, item)
	if err != nil {
		return err
	}

	// Tags are written to the temporary file so the final name
	// only ever appears once the file is complete.
	if err = s.writeSongTags(ctx, tempPath, item); err != nil {
		s.removeTempFile(ctx, tempPath)

		return err
	}

	fileOptions := overwriteFileOptions
	if !s.cfg.ReplaceFiles {
		fileOptions = createNewFileOptions
	}

	if err = renameWithOptions(tempPath, songPath, fileOptions); err != nil {
		s.removeTempFile(ctx, tempPath)

		return err
	}

	logger.Infof(ctx, "Saved song to '%s'", songPath)

	return nil
}

// saveSongToTempFile downloads the audio into a uniquely named temporary
// file next to the final location and returns its path.
func (s *ServiceImpl) saveSongToTempFile(ctx context.Context, item *Song) (string, error) {
	tempName := utils.SetFileExtension(uuid.NewString(), constants.ExtensionPart)
	tempPath := filepath.Join(s.cfg.OutputPath, tempName)

	file, err := os.OpenFile(filepath.Clean(tempPath), overwriteFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	fetchResult, err := s.sunoClient.DownloadFromURL(ctx, item.AudioURL)
	if err != nil {
		file.Close()
		s.removeTempFile(ctx, tempPath)

		return "", err
	}

	defer fetchResult.Body.Close() //nolint:errcheck // Error on close is not critical here.

	// Progress bars only make sense when they are not drowned out by debug output.
	var writer io.Writer = file

	if logger.Level() == zap.InfoLevel {
		bar := progressbar.DefaultBytes(fetchResult.TotalBytes, "Downloading")
		writer = io.MultiWriter(file, bar)
	}

	_, copyErr := io.Copy(writer, fetchResult.Body)
	closeErr := file.Close()

	if copyErr != nil {
		s.removeTempFile(ctx, tempPath)

		return "", fmt.Errorf("failed to write file: %w", copyErr)
	}

	if closeErr != nil {
		s.removeTempFile(ctx, tempPath)

		return "", closeErr
	}

	return tempPath, nil
}

// writeSongTags embeds the song's metadata into the downloaded file.
func (s *ServiceImpl) writeSongTags(ctx context.Context, path string, item *Song) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		return fmt.Errorf("failed to open file for tagging: %w", err)
	}

	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(item.Title)
	tag.SetArtist(songArtistTag)
	tag.SetGenre(item.Tags)

	lyrics := strings.TrimSpace(item.Lyric)
	if lyrics != "" {
		tag.AddUnsynchronisedLyricsFrame(
			//nolint:exhaustruct // ContentDescriptor not available in source data.
			id3v2.UnsynchronisedLyricsFrame{
				Encoding: id3v2.EncodingUTF8,
				Lyrics:   lyrics,
				// Field is required, so we just use lingua franca.
				Language: id3v2.EnglishISO6392Code,
			})
	}

	if err = tag.Save(); err != nil {
		return fmt.Errorf("failed to write tags: %w", err)
	}

	logger.Debugf(ctx, "Tagged song file '%s'", path)

	return nil
}

func (s *ServiceImpl) removeTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v", path, err)
	}
}

// songFilename builds a filesystem-safe file name from the song's
// title and identifier. The identifier keeps the two renditions
// a batch produces from colliding on the shared title.
func (s *ServiceImpl) songFilename(item *Song) string {
	title := utils.SanitizeFilename(item.Title)
	if title == "" {
		title = item.ID
	} else {
		title = title + " [" + item.ID + "]"
	}

	return utils.SetFileExtension(title, constants.ExtensionMP3)
}

// renameWithOptions renames a temporary file into place, honoring the
// exclusive-create semantics when overwriting is disabled.
func renameWithOptions(oldPath, newPath string, fileOptions int) error {
	if fileOptions&os.O_EXCL != 0 {
		// os.Rename silently replaces the destination, so create-check first.
		destination, err := os.OpenFile(filepath.Clean(newPath), fileOptions, constants.DefaultFilePermissions)
		if err != nil {
			return err
		}

		destination.Close()
	}

	return os.Rename(oldPath, newPath)
}
