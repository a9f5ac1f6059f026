package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/rumanw99/Hussam-Awa-sub000/internal/model"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/store"
)

var (
	ErrSectionUnknown = errors.New("unknown content section")
	ErrInvalidItem    = errors.New("invalid item payload")
	ErrItemNotFound   = errors.New("item not found")
	ErrTitleRequired  = errors.New("title is required")
)

// Section names accepted by the content service. Resume sub-sections are
// addressed with a dotted path.
const (
	SectionHero         = "hero"
	SectionAbout        = "about"
	SectionContact      = "contact"
	SectionSettings     = "settings"
	SectionResume       = "resume"
	SectionExperience   = "resume.experience"
	SectionSkills       = "resume.skills"
	SectionAboutMe      = "resume.aboutMe"
	SectionPhotos       = "photos"
	SectionVideos       = "videos"
	SectionTestimonials = "testimonials"
	SectionBlog         = "blog"
)

// ContentService exposes the uniform per-section surface over the site
// content document. Every mutation is a full-document read-modify-write
// through the layered store; section reads go through the short-lived
// section cache first.
type ContentService struct {
	store *store.Store
	cache *store.SectionCache
}

// NewContentService creates a ContentService over the given store and
// section cache.
func NewContentService(st *store.Store, cache *store.SectionCache) *ContentService {
	return &ContentService{store: st, cache: cache}
}

// Section returns the rendered JSON for a section. Reads always succeed
// with the default shape when nothing has been stored yet.
func (s *ContentService) Section(ctx context.Context, name string) (json.RawMessage, error) {
	if _, known := sectionValue(&model.Content{}, name); !known {
		return nil, ErrSectionUnknown
	}

	if cached, ok := s.cache.Get(name); ok {
		return cached, nil
	}

	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	value, _ := sectionValue(doc, name)
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	s.cache.Set(name, raw)
	return raw, nil
}

// ReplaceSection overwrites a whole section (or a resume sub-section)
// with the given JSON value.
func (s *ContentService) ReplaceSection(ctx context.Context, name string, raw json.RawMessage) (store.WriteResult, error) {
	return s.mutate(ctx, name, func(doc *model.Content) error {
		target, known := sectionTarget(doc, name)
		if !known {
			return ErrSectionUnknown
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return ErrInvalidItem
		}
		return nil
	})
}

// AppendItem appends one item to a list section.
func (s *ContentService) AppendItem(ctx context.Context, section string, raw json.RawMessage) (store.WriteResult, error) {
	return s.mutate(ctx, section, func(doc *model.Content) error {
		return mutateList(doc, section, func(length int) (int, error) {
			return length, nil // insert position: end
		}, raw)
	})
}

// UpdateItem replaces the item at index in a list section.
func (s *ContentService) UpdateItem(ctx context.Context, section string, index int, raw json.RawMessage) (store.WriteResult, error) {
	return s.mutate(ctx, section, func(doc *model.Content) error {
		return mutateList(doc, section, func(length int) (int, error) {
			if index < 0 || index >= length {
				return 0, ErrItemNotFound
			}
			return index, nil
		}, raw)
	})
}

// DeleteItem removes the item at index from a list section.
func (s *ContentService) DeleteItem(ctx context.Context, section string, index int) (store.WriteResult, error) {
	return s.mutate(ctx, section, func(doc *model.Content) error {
		return mutateList(doc, section, func(length int) (int, error) {
			if index < 0 || index >= length {
				return 0, ErrItemNotFound
			}
			return index, nil
		}, nil)
	})
}

// CreateBlogPost stores a new post under a generated timestamp id.
func (s *ContentService) CreateBlogPost(ctx context.Context, post model.BlogPost) (model.BlogPost, store.WriteResult, error) {
	if post.Title == "" {
		return model.BlogPost{}, store.WriteResult{}, ErrTitleRequired
	}

	post.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	res, err := s.mutate(ctx, SectionBlog, func(doc *model.Content) error {
		doc.Blog = append(doc.Blog, post)
		return nil
	})
	if err != nil {
		return model.BlogPost{}, res, err
	}
	return post, res, nil
}

// UpdateBlogPost replaces the fields of the post with the given id,
// keeping the id itself.
func (s *ContentService) UpdateBlogPost(ctx context.Context, id string, raw json.RawMessage) (store.WriteResult, error) {
	return s.mutate(ctx, SectionBlog, func(doc *model.Content) error {
		for i := range doc.Blog {
			if doc.Blog[i].ID != id {
				continue
			}
			updated := doc.Blog[i]
			if err := json.Unmarshal(raw, &updated); err != nil {
				return ErrInvalidItem
			}
			updated.ID = id
			doc.Blog[i] = updated
			return nil
		}
		return ErrItemNotFound
	})
}

// DeleteBlogPost removes the post with the given id.
func (s *ContentService) DeleteBlogPost(ctx context.Context, id string) (store.WriteResult, error) {
	return s.mutate(ctx, SectionBlog, func(doc *model.Content) error {
		for i := range doc.Blog {
			if doc.Blog[i].ID == id {
				doc.Blog = append(doc.Blog[:i], doc.Blog[i+1:]...)
				return nil
			}
		}
		return ErrItemNotFound
	})
}

// mutate runs a full read-modify-write cycle and refreshes the cache
// entries touched by the write. Persistence failures are carried in the
// WriteResult, never in the error.
func (s *ContentService) mutate(ctx context.Context, section string, fn func(*model.Content) error) (store.WriteResult, error) {
	doc, err := s.store.Read(ctx)
	if err != nil {
		return store.WriteResult{}, err
	}

	if err := fn(doc); err != nil {
		return store.WriteResult{}, err
	}

	res := s.store.Write(ctx, doc)
	s.refreshCache(doc, section)
	return res, nil
}

// refreshCache writes the new section value through to the cache. A
// resume sub-section also refreshes the parent entry (and vice versa)
// so no stale view survives a write.
func (s *ContentService) refreshCache(doc *model.Content, section string) {
	keys := []string{section}
	switch section {
	case SectionExperience, SectionSkills, SectionAboutMe:
		keys = append(keys, SectionResume)
	case SectionResume:
		keys = append(keys, SectionExperience, SectionSkills, SectionAboutMe)
	}
	for _, key := range keys {
		value, known := sectionValue(doc, key)
		if !known {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			s.cache.Invalidate(key)
			continue
		}
		s.cache.Set(key, raw)
	}
}

// sectionValue resolves a dotted section path to its current value.
func sectionValue(doc *model.Content, name string) (any, bool) {
	switch name {
	case SectionHero:
		return doc.Hero, true
	case SectionAbout:
		return doc.About, true
	case SectionContact:
		return doc.Contact, true
	case SectionSettings:
		return doc.Settings, true
	case SectionResume:
		return doc.Resume, true
	case SectionExperience:
		return doc.Resume.Experience, true
	case SectionSkills:
		return doc.Resume.Skills, true
	case SectionAboutMe:
		return doc.Resume.AboutMe, true
	case SectionPhotos:
		return doc.Photos, true
	case SectionVideos:
		return doc.Videos, true
	case SectionTestimonials:
		return doc.Testimonials, true
	case SectionBlog:
		return doc.Blog, true
	default:
		return nil, false
	}
}

// sectionTarget resolves a dotted section path to a pointer suitable for
// json.Unmarshal on replace.
func sectionTarget(doc *model.Content, name string) (any, bool) {
	switch name {
	case SectionHero:
		return &doc.Hero, true
	case SectionAbout:
		return &doc.About, true
	case SectionContact:
		return &doc.Contact, true
	case SectionSettings:
		return &doc.Settings, true
	case SectionResume:
		return &doc.Resume, true
	case SectionExperience:
		return &doc.Resume.Experience, true
	case SectionSkills:
		return &doc.Resume.Skills, true
	case SectionAboutMe:
		return &doc.Resume.AboutMe, true
	case SectionPhotos:
		return &doc.Photos, true
	case SectionVideos:
		return &doc.Videos, true
	case SectionTestimonials:
		return &doc.Testimonials, true
	case SectionBlog:
		return &doc.Blog, true
	default:
		return nil, false
	}
}

// mutateList performs slice surgery on a list section. pos receives the
// current length and returns the target position; raw is the incoming
// item, or nil for a delete.
func mutateList(doc *model.Content, section string, pos func(int) (int, error), raw json.RawMessage) error {
	switch section {
	case SectionPhotos:
		return spliceList(&doc.Photos, pos, raw)
	case SectionVideos:
		return spliceList(&doc.Videos, pos, raw)
	case SectionTestimonials:
		return spliceList(&doc.Testimonials, pos, raw)
	case SectionExperience:
		return spliceList(&doc.Resume.Experience, pos, raw)
	case SectionSkills:
		return spliceList(&doc.Resume.Skills, pos, raw)
	default:
		return ErrSectionUnknown
	}
}

func spliceList[T any](list *[]T, pos func(int) (int, error), raw json.RawMessage) error {
	i, err := pos(len(*list))
	if err != nil {
		return err
	}

	if raw == nil { // delete
		*list = append((*list)[:i], (*list)[i+1:]...)
		return nil
	}

	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return ErrInvalidItem
	}

	if i == len(*list) {
		*list = append(*list, item)
	} else {
		(*list)[i] = item
	}
	return nil
}
