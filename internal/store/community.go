package store

import (
	"finconnect/internal/core"
	"finconnect/internal/log"
)

// CreatePost assigns a fresh id, stamps the author and creation time, and
// prepends the post so the feed stays newest-first.
func (s *Store) CreatePost(p core.CommunityPost) core.CommunityPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = newID("post")
	if p.AuthorID == "" {
		p.AuthorID = s.currentUserID()
	}
	p.Reactions = []core.Reaction{}
	p.Comments = []core.Comment{}
	p.CreatedAt = s.now()
	s.posts = append([]core.CommunityPost{p}, s.posts...)

	s.debug("Post created", log.FieldPostID, p.ID, log.FieldUserID, p.AuthorID)
	return p
}

// ReactToPost increments the count of an existing reaction type or appends a
// new one with count 1. There is no per-user tracking and no undo. Returns
// false when the post id is unknown.
func (s *Store) ReactToPost(postID, reactionType string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		post := &s.posts[i]
		for j := range post.Reactions {
			if post.Reactions[j].Type == reactionType {
				post.Reactions[j].Count++
				return true
			}
		}
		post.Reactions = append(post.Reactions, core.Reaction{Type: reactionType, Count: 1})
		return true
	}
	return false
}

// AddComment appends a comment authored by the current session user to the
// matching post. Returns false when the post id is unknown.
func (s *Store) AddComment(postID, content string) (core.Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		comment := core.Comment{
			ID:        newID("comment"),
			AuthorID:  s.currentUserID(),
			Content:   content,
			CreatedAt: s.now(),
		}
		s.posts[i].Comments = append(s.posts[i].Comments, comment)
		s.debug("Comment added", log.FieldPostID, postID)
		return comment, true
	}
	return core.Comment{}, false
}

// Posts returns the feed, newest-first. Nested slices are copied so readers
// never alias the canonical data.
func (s *Store) Posts() []core.CommunityPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePosts(s.posts)
}

// Post returns a single post by id.
func (s *Store) Post(id string) (core.CommunityPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			p.Reactions = append([]core.Reaction(nil), p.Reactions...)
			p.Comments = append([]core.Comment(nil), p.Comments...)
			return p, true
		}
	}
	return core.CommunityPost{}, false
}
