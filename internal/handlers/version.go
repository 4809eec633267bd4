package handlers

import (
	"github.com/connorholly11/friend-meetup/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// Version is overridden at build time with -ldflags "-X ...handlers.Version=v1.2.3".
var Version = "dev"

func GetVersion(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"version":    Version,
		"apiVersion": "v1",
	})
}
