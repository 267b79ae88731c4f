package round

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// AttachPhoto stores an image from a data URL and attaches it to the round,
// or to one of its items when ItemAnswerID is set.
func (s *Service) AttachPhoto(ctx context.Context, input AttachPhotoInput) (*domain.Photo, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	img, err := parseImageDataURL(input.DataURL)
	if err != nil {
		return nil, err
	}

	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" {
		fileName = defaultSafeBase + "." + extensionByMime(img.MimeType)
	}

	var (
		created *domain.Photo
		stored  string
	)
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rd, err := s.lockOpen(txCtx, actor, input.RoundID)
		if err != nil {
			return err
		}

		details := "Photo added to the round"
		meta := domain.AuditMetadata{domain.MetaBytes: len(img.Data)}
		if input.ItemAnswerID != nil {
			if _, err := s.answerOf(txCtx, rd, *input.ItemAnswerID); err != nil {
				return err
			}
			details = "Photo added to a round item"
			meta[domain.MetaItemID] = input.ItemAnswerID.String()
		}

		ref, err := s.blobs.Put(txCtx, photoKey(rd.ID, input.ItemAnswerID, fileName, img.MimeType), img.Data, img.MimeType)
		if err != nil {
			return fmt.Errorf("store photo: %w", err)
		}
		stored = ref

		created, err = s.photos.Create(txCtx, domain.Photo{
			ID:               uuid.New(),
			RoundID:          rd.ID,
			ItemAnswerID:     input.ItemAnswerID,
			FileName:         fileName,
			MimeType:         img.MimeType,
			SizeBytes:        len(img.Data),
			StorageKey:       ref,
			CapturedAt:       s.now(),
			UploadedByUserID: actor.ID,
		})
		if err != nil {
			return fmt.Errorf("create photo: %w", err)
		}

		return s.logAudit(txCtx, actor, rd.ID, domain.AuditActionPhotoAdded, details, meta)
	})
	if txErr != nil {
		s.discardBlob(ctx, stored)
		return nil, txErr
	}

	s.metrics.RoundEvent(EventPhotoAdded)
	s.log.InfoContext(ctx, "photo attached",
		slog.String("round_id", input.RoundID.String()),
		slog.String("photo_id", created.ID.String()),
		slog.Int("bytes", created.SizeBytes))

	return created, nil
}

// discardBlob removes a blob written by a failed AttachPhoto. Stores that
// joined the transaction were rolled back with it and are left alone.
func (s *Service) discardBlob(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	d, ok := s.blobs.(blobDeleter)
	if !ok {
		return
	}
	if err := d.Delete(context.WithoutCancel(ctx), ref); err != nil {
		s.log.WarnContext(ctx, "orphan photo blob left behind",
			slog.String("ref", ref), slog.String("error", err.Error()))
	}
}

// PhotoContent returns the bytes and mime type of a photo of the round.
func (s *Service) PhotoContent(ctx context.Context, roundID, photoID uuid.UUID) ([]byte, string, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, "", err
	}

	if _, err := s.readable(ctx, actor, roundID); err != nil {
		return nil, "", err
	}

	p, err := s.photos.Get(ctx, roundID, photoID)
	if err != nil {
		return nil, "", fmt.Errorf("get photo: %w", err)
	}

	data, mime, err := s.blobs.Get(ctx, p.StorageKey)
	if err != nil {
		return nil, "", fmt.Errorf("read photo %s: %w", photoID, err)
	}
	if p.MimeType != "" {
		mime = p.MimeType
	}
	return data, mime, nil
}
