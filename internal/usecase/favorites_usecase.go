package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/listing-microservice/internal/domain/repository"
	"github.com/listing-microservice/internal/pkg/errors"
	"github.com/listing-microservice/internal/pkg/notify"
)

const (
	favoritesKeyPrefix = "favorites:"
	languageKeyPrefix  = "language:"
)

// FavoritesUseCase keeps per-visitor state: the saved-listing set and the
// active language. Both live in the cache keyed by the visitor id, with no
// expiry, so they survive restarts the same way browser storage would.
type FavoritesUseCase struct {
	cache           repository.CacheRepository
	notifier        notify.Notifier
	logger          *zap.Logger
	defaultLanguage string
	languages       map[string]struct{}
}

func NewFavoritesUseCase(
	cache repository.CacheRepository,
	notifier notify.Notifier,
	defaultLanguage string,
	languages []string,
	logger *zap.Logger,
) *FavoritesUseCase {
	supported := make(map[string]struct{}, len(languages))
	for _, lang := range languages {
		supported[lang] = struct{}{}
	}
	return &FavoritesUseCase{
		cache:           cache,
		notifier:        notifier,
		logger:          logger,
		defaultLanguage: defaultLanguage,
		languages:       supported,
	}
}

// Toggle flips the favorite state of a listing for the visitor and reports
// whether the listing ended up saved.
func (uc *FavoritesUseCase) Toggle(ctx context.Context, visitor string, id int) (bool, error) {
	favorites, err := uc.load(ctx, visitor)
	if err != nil {
		return false, err
	}

	added := true
	for i, fav := range favorites {
		if fav == id {
			favorites = append(favorites[:i], favorites[i+1:]...)
			added = false
			break
		}
	}
	if added {
		favorites = append(favorites, id)
	}

	if err := uc.store(ctx, visitor, favorites); err != nil {
		return false, err
	}

	if added {
		uc.notifier.Notify("Added to favorites!")
	} else {
		uc.notifier.Notify("Removed from favorites")
	}
	return added, nil
}

// List returns the visitor's saved listing ids in insertion order.
func (uc *FavoritesUseCase) List(ctx context.Context, visitor string) ([]int, error) {
	return uc.load(ctx, visitor)
}

// Language returns the visitor's active language, falling back to the site
// default when nothing is stored.
func (uc *FavoritesUseCase) Language(ctx context.Context, visitor string) string {
	raw, err := uc.cache.Get(ctx, languageKeyPrefix+visitor)
	if err != nil {
		uc.logger.Warn("Failed to load language preference", zap.Error(err))
		return uc.defaultLanguage
	}
	if raw == nil {
		return uc.defaultLanguage
	}
	lang := string(raw)
	if _, ok := uc.languages[lang]; !ok {
		return uc.defaultLanguage
	}
	return lang
}

// SetLanguage stores the visitor's language preference.
func (uc *FavoritesUseCase) SetLanguage(ctx context.Context, visitor, lang string) error {
	if _, ok := uc.languages[lang]; !ok {
		return errors.ErrUnsupportedLanguage
	}
	if err := uc.cache.Set(ctx, languageKeyPrefix+visitor, []byte(lang), 0); err != nil {
		return errors.ErrCacheError
	}
	return nil
}

func (uc *FavoritesUseCase) load(ctx context.Context, visitor string) ([]int, error) {
	raw, err := uc.cache.Get(ctx, favoritesKeyPrefix+visitor)
	if err != nil {
		return nil, errors.ErrCacheError
	}
	if raw == nil {
		return []int{}, nil
	}

	var favorites []int
	if err := json.Unmarshal(raw, &favorites); err != nil {
		// A corrupt entry resets to empty rather than wedging the visitor.
		uc.logger.Warn("Discarding corrupt favorites entry",
			zap.String("visitor", visitor), zap.Error(err))
		return []int{}, nil
	}
	return favorites, nil
}

func (uc *FavoritesUseCase) store(ctx context.Context, visitor string, favorites []int) error {
	raw, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	if err := uc.cache.Set(ctx, favoritesKeyPrefix+visitor, raw, 0); err != nil {
		return errors.ErrCacheError
	}
	return nil
}
