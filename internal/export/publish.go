package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mind-engage/pppcourse/internal/course"
	"github.com/mind-engage/pppcourse/internal/logger"
	"github.com/mind-engage/pppcourse/internal/qti"
	"github.com/mind-engage/pppcourse/internal/storage"
)

// Publisher writes bundles into a blob store.
type Publisher struct {
	store storage.BlobStore
	log   *logger.Logger
}

func NewPublisher(store storage.BlobStore, log *logger.Logger) *Publisher {
	if log == nil {
		log = logger.Nop()
	}
	return &Publisher{store: store, log: log}
}

// Publish writes course.<ext> with every track and modules/<id>.<ext> per
// module. It returns the keys written, course bundle first.
func (p *Publisher) Publish(ctx context.Context, tracks []course.Track, f Format) ([]string, error) {
	var keys []string
	put := func(key string, v any) error {
		var buf bytes.Buffer
		if err := Write(&buf, f, v); err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		k, err := p.store.Put(ctx, key, &buf)
		if err != nil {
			return fmt.Errorf("put %s: %w", key, err)
		}
		keys = append(keys, k)
		return nil
	}

	if err := put("course."+f.Ext(), NewBundle(tracks)); err != nil {
		return keys, err
	}
	for _, t := range tracks {
		for _, m := range t.Modules {
			if err := put(fmt.Sprintf("modules/%s.%s", m.ID, f.Ext()), m); err != nil {
				return keys, err
			}
		}
	}
	p.log.Info("course published", "format", f, "blobs", len(keys))
	return keys, nil
}

// PublishQTI writes one QTI 2.1 package per module as qti/<id>.zip.
func (p *Publisher) PublishQTI(ctx context.Context, tracks []course.Track) ([]string, error) {
	var keys []string
	for _, t := range tracks {
		for _, m := range t.Modules {
			pkg, err := qti.BuildPackage(m)
			if err != nil {
				return keys, fmt.Errorf("qti %s: %w", m.ID, err)
			}
			k, err := p.store.Put(ctx, "qti/"+m.ID+".zip", bytes.NewReader(pkg))
			if err != nil {
				return keys, fmt.Errorf("put qti %s: %w", m.ID, err)
			}
			keys = append(keys, k)
		}
	}
	p.log.Info("qti packages published", "blobs", len(keys))
	return keys, nil
}
