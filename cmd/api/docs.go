package main

// @title           Sai Siddha Furniture Works API
// @version         1.0
// @description     Back-office API for a wooden pallet manufacturer: catalog, sales, quotations, GST invoices and payment tracking

// @contact.name   Sai Siddha Furniture Works
// @contact.email  saisiddhafurnitureworks@gmail.com

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Session token using the Bearer scheme. Example: "Bearer {token}"
