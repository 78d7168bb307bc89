package remover

import (
	"context"
	"net/http"
	"sync"

	"github.com/phambaophuc/watermark-removal/internal/config"
	"github.com/phambaophuc/watermark-removal/internal/models"
	"github.com/phambaophuc/watermark-removal/internal/services/inpaint"
	"github.com/phambaophuc/watermark-removal/internal/services/storage"
	"github.com/phambaophuc/watermark-removal/pkg/utils"
	"go.uber.org/zap"
)

// Result is the outcome for one source image. Exactly one of PNG and
// Err is set.
type Result struct {
	SourceURL string
	PNG       []byte
	Err       error
}

// Service runs the per-image pipeline: cache lookup, download, mask,
// inpaint, encode.
type Service struct {
	inpainter      inpaint.Inpainter
	cache          *storage.CacheService
	httpClient     *http.Client
	logger         *zap.Logger
	maxFileSize    int64
	maxConcurrency int
}

func NewService(
	inpainter inpaint.Inpainter,
	cache *storage.CacheService,
	logger *zap.Logger,
	cfg *config.Config,
) *Service {
	return &Service{
		inpainter:      inpainter,
		cache:          cache,
		httpClient:     &http.Client{Timeout: cfg.Fetch.Timeout},
		logger:         logger,
		maxFileSize:    cfg.Fetch.MaxFileSize,
		maxConcurrency: cfg.Processing.MaxConcurrency,
	}
}

// Process cleans every image in the list. Failures never stop the
// batch; each slot carries its own error. Results come back in input
// order regardless of which worker finished first.
func (s *Service) Process(ctx context.Context, urls []string, region models.WatermarkRegion, device string) []Result {
	results := make([]Result, len(urls))

	numWorkers := s.maxConcurrency
	if numWorkers < 1 {
		numWorkers = 1
	}
	if len(urls) < numWorkers {
		numWorkers = len(urls)
	}

	jobs := make(chan int, len(urls))
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				png, err := s.processOne(ctx, urls[i], region, device)
				results[i] = Result{SourceURL: urls[i], PNG: png, Err: err}
			}
		}()
	}

	for i := range urls {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

func (s *Service) processOne(ctx context.Context, imageURL string, region models.WatermarkRegion, device string) ([]byte, error) {
	cacheKey := s.cache.GenerateCacheKey(imageURL, region, device)

	if cached, err := s.cache.GetFromCache(ctx, cacheKey); err == nil && cached != nil {
		s.logger.Info("Cache hit", zap.String("url", imageURL))
		return cached, nil
	} else if err != nil {
		s.logger.Warn("Cache lookup failed", zap.String("url", imageURL), zap.Error(err))
	}

	data, _, err := utils.DownloadImage(ctx, s.httpClient, imageURL, s.maxFileSize)
	if err != nil {
		return nil, err
	}

	img, err := utils.DecodeImage(data)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	cleaned := img

	// An empty region means there is nothing to repaint; the source
	// image passes through untouched.
	if !ResolveRegion(bounds.Dx(), bounds.Dy(), region).Empty() {
		mask := BuildMask(bounds.Dx(), bounds.Dy(), region)
		cleaned, err = s.inpainter.Inpaint(ctx, img, mask, device)
		if err != nil {
			return nil, err
		}
	}

	png, err := EncodePNG(cleaned)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetCache(ctx, cacheKey, png); err != nil {
		s.logger.Warn("Failed to cache result", zap.String("url", imageURL), zap.Error(err))
	}

	return png, nil
}
