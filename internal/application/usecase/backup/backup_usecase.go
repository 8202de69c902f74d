package backup

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const folder = "backups/portfolio"

// Tables are the four tables that make up the portfolio.
var Tables = []string{"about_me", "contact", "skills", "projects"}

type BackupUseCase struct {
	dsn      string
	uploader service.Uploader
	logger   logger.Logger
	now      func() time.Time
}

func NewBackupUseCase(dsn string, uploader service.Uploader, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{dsn: dsn, uploader: uploader, logger: log, now: time.Now}
}

// Execute dumps the portfolio tables with pg_dump and uploads the archive.
func (uc *BackupUseCase) Execute(ctx context.Context) error {
	uc.logger.Info("Starting portfolio backup...")

	cmd := exec.CommandContext(ctx, "pg_dump", uc.dumpArgs()...)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		uc.logger.Error("pg_dump failed", err, zap.String("stderr", stderr.String()))
		return fmt.Errorf("pg_dump failed: %w", err)
	}

	publicID := uc.publicID()
	res, err := uc.uploader.Upload(ctx, bytes.NewReader(out.Bytes()), folder, publicID)
	if err != nil {
		uc.logger.Error("Failed to upload backup", err, zap.String("public_id", publicID))
		return fmt.Errorf("upload backup failed: %w", err)
	}

	uc.logger.Info("Portfolio backup uploaded",
		zap.String("url", res.URL),
		zap.String("public_id", res.PublicID),
		zap.Int("bytes", out.Len()),
	)
	return nil
}

func (uc *BackupUseCase) dumpArgs() []string {
	args := []string{"--dbname=" + uc.dsn, "--format=c", "--data-only"}
	for _, t := range Tables {
		args = append(args, "--table="+t)
	}
	return args
}

func (uc *BackupUseCase) publicID() string {
	return fmt.Sprintf("backup-%s", uc.now().UTC().Format("2006-01-02_15-04-05"))
}
