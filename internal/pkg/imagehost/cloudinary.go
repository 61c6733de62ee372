package imagehost

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/wilsonXeem/clong-backend/internal/pkg/logger"
)

const cloudinaryAPIBase = "https://api.cloudinary.com/v1_1"

// CloudinaryConfig holds the image host credentials
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Cloudinary relays uploads to the Cloudinary REST API
type Cloudinary struct {
	config CloudinaryConfig
	client *http.Client
}

// NewCloudinary creates a Cloudinary uploader
func NewCloudinary(config CloudinaryConfig) *Cloudinary {
	return &Cloudinary{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// sign builds the Cloudinary request signature: SHA-1 over the alphabetically
// sorted parameters concatenated with the API secret.
func (c *Cloudinary) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.config.APISecret))
	return hex.EncodeToString(sum[:])
}

// Upload relays a multipart file to Cloudinary and returns its URL and public id
func (c *Cloudinary) Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (*UploadResult, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{"timestamp": timestamp}
	if folder != "" {
		params["folder"] = folder
	}
	signature := c.sign(params)

	body := &strings.Builder{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", fileHeader.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file into upload form: %w", err)
	}

	fields := map[string]string{
		"api_key":   c.config.APIKey,
		"timestamp": timestamp,
		"signature": signature,
	}
	if folder != "" {
		fields["folder"] = folder
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	url := fmt.Sprintf("%s/%s/image/upload", cloudinaryAPIBase, c.config.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image host request failed: %w", err)
	}
	defer resp.Body.Close()

	var result cloudinaryUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode image host response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || result.Error != nil {
		msg := "unknown error"
		if result.Error != nil {
			msg = result.Error.Message
		}
		logger.Error().Int("status", resp.StatusCode).Str("error", msg).Msg("Image host rejected upload")
		return nil, fmt.Errorf("image host rejected upload: %s", msg)
	}

	logger.Info().Str("publicId", result.PublicID).Msg("File relayed to image host")
	return &UploadResult{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// Delete removes a file from Cloudinary by public id
func (c *Cloudinary) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}
	signature := c.sign(params)

	form := fmt.Sprintf("public_id=%s&api_key=%s&timestamp=%s&signature=%s",
		publicID, c.config.APIKey, timestamp, signature)

	url := fmt.Sprintf("%s/%s/image/destroy", cloudinaryAPIBase, c.config.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(form))
	if err != nil {
		return fmt.Errorf("failed to build destroy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("image host request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image host destroy failed with status %d", resp.StatusCode)
	}

	return nil
}
