package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"society_connect/internal/apierr"
	"society_connect/internal/authz"
	"society_connect/internal/middleware"
	"society_connect/internal/models"
	"society_connect/internal/response"
)

type CommunityController struct {
	DB *gorm.DB
}

func NewCommunityController(db *gorm.DB) *CommunityController {
	return &CommunityController{DB: db}
}

type createPostInput struct {
	Content string `json:"content" binding:"required"`
	Images  []struct {
		URL      string `json:"url"`
		FileName string `json:"file_name"`
	} `json:"images"`
}

func (cc *CommunityController) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input createPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	post := models.CommunityPost{
		Content:   input.Content,
		CreatedBy: user.ID,
	}
	for _, img := range input.Images {
		post.Images = append(post.Images, models.PostImage{URL: img.URL, FileName: img.FileName})
	}

	if err := cc.DB.Create(&post).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Post created", gin.H{"post": post})
}

func (cc *CommunityController) List(c *gin.Context) {
	var posts []models.CommunityPost
	err := cc.DB.Preload("Creator").Preload("Images").Preload("Likes").
		Preload("Comments").Preload("Comments.Creator").
		Order("created_at DESC").Find(&posts).Error
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Posts fetched", gin.H{"posts": posts})
}

type updatePostInput struct {
	Content string `json:"content" binding:"required"`
}

func (cc *CommunityController) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var post models.CommunityPost
	if err := cc.DB.First(&post, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Post not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if post.CreatedBy != user.ID && user.Role != string(authz.RoleAdmin) {
		response.Error(c, apierr.Forbidden("You cannot edit this post"))
		return
	}

	var input updatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	post.Content = input.Content
	if err := cc.DB.Save(&post).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Post updated", gin.H{"post": post})
}

func (cc *CommunityController) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var post models.CommunityPost
	if err := cc.DB.First(&post, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Post not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if post.CreatedBy != user.ID && user.Role != string(authz.RoleAdmin) {
		response.Error(c, apierr.Forbidden("You cannot delete this post"))
		return
	}

	if err := cc.DB.Delete(&post).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Post deleted", gin.H{})
}

// ToggleLike adds or removes the caller's like on a post.
func (cc *CommunityController) ToggleLike(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var post models.CommunityPost
	if err := cc.DB.First(&post, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Post not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var like models.PostLike
	err := cc.DB.Where("community_post_id = ? AND user_id = ?", post.ID, user.ID).First(&like).Error
	switch {
	case err == nil:
		if err := cc.DB.Delete(&like).Error; err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Like removed", gin.H{})
	case errors.Is(err, gorm.ErrRecordNotFound):
		like = models.PostLike{CommunityPostID: post.ID, UserID: user.ID}
		if err := cc.DB.Create(&like).Error; err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Post liked", gin.H{})
	default:
		response.Error(c, err)
	}
}

type addCommentInput struct {
	Content string `json:"content" binding:"required"`
}

func (cc *CommunityController) AddComment(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var post models.CommunityPost
	if err := cc.DB.First(&post, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Post not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input addCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	comment := models.PostComment{
		CommunityPostID: post.ID,
		Content:         input.Content,
		CreatedBy:       user.ID,
	}
	if err := cc.DB.Create(&comment).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Comment added", gin.H{"comment": comment})
}

func (cc *CommunityController) DeleteComment(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var comment models.PostComment
	err := cc.DB.Where("id = ? AND community_post_id = ?",
		c.Param("commentId"), c.Param("id")).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Comment not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if comment.CreatedBy != user.ID && user.Role != string(authz.RoleAdmin) {
		response.Error(c, apierr.Forbidden("You cannot delete this comment"))
		return
	}

	if err := cc.DB.Delete(&comment).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Comment deleted", gin.H{})
}
