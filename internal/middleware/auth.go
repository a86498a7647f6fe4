package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/jsonresponse/api/transport"
)

// HeaderUserID is set on the request for downstream handlers once the token is verified.
const HeaderUserID = "X-User-ID"

// JWTAuth verifies an HS256 bearer token and answers with a 401 failure
// envelope when it is missing or invalid. An empty issuer skips the iss check.
func JWTAuth(secret, issuer string, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			tokenString := extractToken(ctx)
			if tokenString == "" || secret == "" {
				unauthorized(ctx, logger)
				return
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("invalid jwt token", zap.Error(err))
				unauthorized(ctx, logger)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || (issuer != "" && !claims.VerifyIssuer(issuer, true)) {
				logger.Warn("jwt issuer mismatch", zap.String("expected", issuer))
				unauthorized(ctx, logger)
				return
			}
			if userID, ok := claims["user_id"].(string); ok {
				ctx.Request.Header.Set(HeaderUserID, userID)
			}

			next(ctx)
		}
	}
}

func unauthorized(ctx *fasthttp.RequestCtx, logger *zap.Logger) {
	resp, err := transport.Failure[[]byte](transport.StatusUnauthorized)
	if err != nil {
		logger.Error("failed to build json response", zap.Error(err))
		ctx.Error(fasthttp.StatusMessage(fasthttp.StatusUnauthorized), fasthttp.StatusUnauthorized)
		return
	}
	resp.WriteFastHTTP(&ctx.Response)
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
